package schema

import (
	"testing"

	"github.com/siherrmann/jobSchema/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActorSchema(t *testing.T) {
	s := NewActorSchema()

	t.Run("Dump of a user renders the user shape", func(t *testing.T) {
		dumped, err := s.Dump(&model.User{ID: 7, Username: "ada", Email: "ada@example.com", FullName: "Ada Lovelace"})
		require.NoError(t, err)
		assert.Equal(t, model.DataMap{
			"type":     "user",
			"id":       7,
			"username": "ada",
			"email":    "ada@example.com",
			"profile":  map[string]interface{}{"full_name": "Ada Lovelace"},
		}, dumped)
	})

	t.Run("Dump of an absent user renders the system", func(t *testing.T) {
		dumped, err := s.Dump((*model.User)(nil))
		require.NoError(t, err)
		assert.Equal(t, model.DataMap{
			"type":     "system",
			"id":       "system",
			"username": "system",
			"profile":  map[string]interface{}{"full_name": "System"},
		}, dumped)
	})

	t.Run("Load of an actor is not supported", func(t *testing.T) {
		_, err := s.Load(model.DataMap{"type": "user"})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrDumpOnly)
	})
}
