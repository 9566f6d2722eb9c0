package txmanager

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestIsRetryable(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"serialization failure", &pq.Error{Code: "40001"}, true},
		{"deadlock", &pq.Error{Code: "40P01"}, true},
		{"serialization failure at commit", fmt.Errorf("%w: %w", ErrCommitTx, &pq.Error{Code: "40001"}), true},
		{"deadlock at commit", fmt.Errorf("%w: %w", ErrCommitTx, &pq.Error{Code: "40P01"}), true},
		{"serialization failure wrapped by repository", fmt.Errorf("%w: Create - execute insert: %w", errors.New("storage"), &pq.Error{Code: "40001"}), true},
		{"unique violation", &pq.Error{Code: "23505"}, false},
		{"non-pq error", errors.New("connection refused"), false},
		{"begin failure", fmt.Errorf("%w: %v", ErrBeginTx, errors.New("pool exhausted")), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, isRetryable(tc.err))
		})
	}
}
