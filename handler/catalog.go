package handler

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"

	"github.com/siherrmann/jobSchema/registry"

	"github.com/go-git/go-billy/v5/util"
	"github.com/labstack/echo/v4"
)

// UploadCatalogs stores uploaded catalog files and registers their tasks,
// queues and users. Nothing is stored if any file fails to parse.
func (m *ManagerHandler) UploadCatalogs(c echo.Context) error {
	// Parse multipart form with 32MB max memory
	err := c.Request().ParseMultipartForm(32 << 20)
	if err != nil {
		return renderJson(c, http.StatusBadRequest, fmt.Sprintf("Failed to parse multipart form: %v", err))
	}

	form := c.Request().MultipartForm
	defer form.RemoveAll()

	files := form.File["files"]
	if len(files) == 0 {
		return renderJson(c, http.StatusBadRequest, "No files found in the request")
	}

	type upload struct {
		filename string
		data     []byte
		catalog  *registry.Catalog
	}
	uploads := []upload{}
	for _, fileHeader := range files {
		file, err := fileHeader.Open()
		if err != nil {
			return renderJson(c, http.StatusInternalServerError, fmt.Sprintf("Failed to open file %s: %v", fileHeader.Filename, err))
		}
		data, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			return renderJson(c, http.StatusInternalServerError, fmt.Sprintf("Failed to read file %s: %v", fileHeader.Filename, err))
		}

		filename := filepath.Base(fileHeader.Filename)
		catalog, err := registry.ParseCatalog(data, filepath.Ext(filename))
		if err != nil {
			return renderJson(c, http.StatusBadRequest, fmt.Sprintf("Invalid catalog %s: %v", filename, err))
		}
		uploads = append(uploads, upload{filename: filename, data: data, catalog: catalog})
	}

	registered := 0
	for _, u := range uploads {
		err := util.WriteFile(m.filesystem, u.filename, u.data, 0o644)
		if err != nil {
			return renderJson(c, http.StatusInternalServerError, fmt.Sprintf("Failed to save file %s: %v", u.filename, err))
		}
		registered += u.catalog.Apply(m.tasks, m.queues, m.users, m.logger)
	}

	return renderJson(c, http.StatusOK, fmt.Sprintf("%v catalog(s) uploaded, %v task(s) registered", len(uploads), registered))
}

// GetCatalogs lists the files of the catalog filesystem
func (m *ManagerHandler) GetCatalogs(c echo.Context) error {
	files, err := m.filesystem.ListFiles()
	if err != nil {
		return renderJson(c, http.StatusInternalServerError, fmt.Sprintf("Failed to list files: %v", err))
	}
	return c.JSON(http.StatusOK, files)
}
