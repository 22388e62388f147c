package handler

import (
	"encoding/json"
	"log/slog"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/siherrmann/jobSchema/model"
	"github.com/siherrmann/jobSchema/registry"
	"github.com/siherrmann/jobSchema/storage"

	vm "github.com/siherrmann/validator/model"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T) *ManagerHandler {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	tasks := registry.NewTaskRegistry(logger)
	require.NoError(t, tasks.Register(model.Task{
		Name:        "test-task",
		Description: "Test task",
		Parameters: map[string]model.Parameter{
			"input": {Name: "input", Default: model.NoDefault, Kind: "POSITIONAL_OR_KEYWORD"},
		},
		Arguments: []vm.Validation{
			{Key: "input", Type: vm.String, Requirement: "min1"},
		},
	}))
	queues, err := registry.NewQueueRegistry("", "celery", "priority")
	require.NoError(t, err)
	users := registry.NewUserRegistry(model.User{ID: 1, Username: "ada"})

	return NewManagerHandler(storage.NewFilesystemMemory(), tasks, queues, users, logger)
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	body := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}
