package mapping

import (
	"errors"
	"fmt"
	"testing"

	"connectrpc.com/connect"

	"github.com/eslsoft/learnpath/internal/entity"
)

func TestToConnectError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want connect.Code
	}{
		{"invalid learner", entity.ErrInvalidLearnerID, connect.CodeInvalidArgument},
		{"bad filter", fmt.Errorf("%w: field not allowed", entity.ErrInvalidListQuery), connect.CodeInvalidArgument},
		{"unknown word", entity.ErrWordNotFound, connect.CodeNotFound},
		{"empty assignment", entity.ErrAssignmentNotFound, connect.CodeNotFound},
		{"storage down", fmt.Errorf("upsert progress: %w", entity.ErrStorageUnavailable), connect.CodeUnavailable},
		{"anything else", errors.New("boom"), connect.CodeInternal},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := connect.CodeOf(ToConnectError(tc.err))
			if got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}

	if ToConnectError(nil) != nil {
		t.Fatal("nil error must stay nil")
	}
}
