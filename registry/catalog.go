package registry

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"github.com/siherrmann/jobSchema/helper"
	"github.com/siherrmann/jobSchema/model"
	"github.com/siherrmann/jobSchema/storage"
	"gopkg.in/yaml.v3"

	vm "github.com/siherrmann/validator/model"
)

// Catalog is the file format tasks and queues are loaded from. A file may
// also contain a bare list of tasks.
type Catalog struct {
	Tasks        []CatalogTask `json:"tasks"`
	Queues       []string      `json:"queues"`
	DefaultQueue string        `json:"default_queue"`
	Users        []model.User  `json:"users"`
}

type CatalogTask struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Parameters  []model.Parameter `json:"parameters"`
	Arguments   []vm.Validation   `json:"arguments"`
}

func (t CatalogTask) toTask() model.Task {
	parameters := make(map[string]model.Parameter, len(t.Parameters))
	for _, parameter := range t.Parameters {
		if parameter.Default == nil {
			parameter.Default = model.NoDefault
		}
		parameters[parameter.Name] = parameter
	}
	return model.Task{
		Name:        t.Name,
		Description: t.Description,
		Parameters:  parameters,
		Arguments:   t.Arguments,
	}
}

// ParseCatalog parses a catalog in JSON or, for format "yaml"/"yml", YAML.
func ParseCatalog(data []byte, format string) (*Catalog, error) {
	switch strings.ToLower(strings.TrimPrefix(format, ".")) {
	case "yaml", "yml":
		var raw interface{}
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, helper.NewError("unmarshal yaml catalog", err)
		}
		converted, err := json.Marshal(raw)
		if err != nil {
			return nil, helper.NewError("convert yaml catalog", err)
		}
		data = converted
	case "json", "":
	default:
		return nil, helper.NewError("parse catalog", fmt.Errorf("unsupported catalog format %q", format))
	}

	catalog := &Catalog{}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &catalog.Tasks); err != nil {
			return nil, helper.NewError("unmarshal catalog tasks", err)
		}
		return catalog, nil
	}
	if err := json.Unmarshal(trimmed, catalog); err != nil {
		return nil, helper.NewError("unmarshal catalog", err)
	}
	return catalog, nil
}

// LoadCatalog reads and parses one catalog file from fs.
func LoadCatalog(fs billy.Filesystem, path string) (*Catalog, error) {
	data, err := util.ReadFile(fs, path)
	if err != nil {
		return nil, helper.NewError("read catalog", err)
	}
	return ParseCatalog(data, filepath.Ext(path))
}

// LoadCatalogs loads every JSON and YAML file of fs. Files that fail to
// parse are skipped with a warning.
func LoadCatalogs(fs storage.Filesystem, logger *slog.Logger) ([]*Catalog, error) {
	if logger == nil {
		logger = slog.Default()
	}

	files, err := fs.ListFiles()
	if err != nil {
		return nil, helper.NewError("list catalog files", err)
	}

	catalogs := []*Catalog{}
	for _, file := range files {
		switch strings.ToLower(filepath.Ext(file.Name)) {
		case ".json", ".yaml", ".yml":
		default:
			continue
		}
		catalog, err := LoadCatalog(fs, file.Name)
		if err != nil {
			logger.Warn("Failed to load catalog", "file", file.Name, "error", err)
			continue
		}
		catalogs = append(catalogs, catalog)
	}
	return catalogs, nil
}

// Apply registers the catalog's tasks, queues and users. Invalid tasks are
// skipped with a warning. It returns the number of registered tasks.
func (c *Catalog) Apply(tasks *TaskRegistry, queues *QueueRegistry, users *UserRegistry, logger *slog.Logger) int {
	if logger == nil {
		logger = slog.Default()
	}

	registered := 0
	for _, catalogTask := range c.Tasks {
		err := tasks.Register(catalogTask.toTask())
		if err != nil {
			logger.Warn("Failed to register task", "name", catalogTask.Name, "error", err)
			continue
		}
		registered++
	}

	if queues != nil && len(c.Queues) > 0 {
		queues.SetQueues(c.Queues...)
	}
	if queues != nil && c.DefaultQueue != "" {
		if err := queues.SetDefault(c.DefaultQueue); err != nil {
			logger.Warn("Failed to set default queue", "queue", c.DefaultQueue, "error", err)
		}
	}

	if users != nil {
		for _, user := range c.Users {
			users.Add(user)
		}
	}

	logger.Info("Finished loading catalog", "tasks", registered, "total", len(c.Tasks))
	return registered
}
