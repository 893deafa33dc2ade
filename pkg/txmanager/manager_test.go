package txmanager

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestIsSerializationFailure(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"plain error", errors.New("connection refused"), false},
		{"pq serialization failure", &pq.Error{Code: "40001"}, true},
		{"pq deadlock", &pq.Error{Code: "40P01"}, true},
		{"pq other code", &pq.Error{Code: "23505"}, false},
		{
			"wrapped pq error",
			fmt.Errorf("storage: %w", &pq.Error{Code: "40001"}),
			true,
		},
		{
			"driver error flattened to text",
			fmt.Errorf("storage: Create - execute insert: %v",
				errors.New("pq: could not serialize access due to concurrent update")),
			true,
		},
		{
			"deadlock flattened to text",
			fmt.Errorf("storage: %v", errors.New("pq: deadlock detected")),
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsSerializationFailure(tt.err))
		})
	}
}
