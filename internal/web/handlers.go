package web

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"excelproc/internal/core"
	"excelproc/internal/logging"
)

// ProcessResponse is the success payload for both processing endpoints.
// The transformed table is split into headers (row 0) and data rows.
type ProcessResponse struct {
	Headers             []string      `json:"headers"`
	Rows                [][]core.Cell `json:"rows"`
	ConcatenatedColumns []string      `json:"concatenated_columns"`
	TotalRows           int           `json:"total_rows"`
}

// handleRoot returns service metadata.
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{
		"message": "Excel Processor API is running",
		"mode":    s.service.Mode(),
		"endpoints": map[string]string{
			"process_excel":  "/process-excel",
			"process_upload": "/api/process",
			"history":        "/api/history",
			"status":         "/api/status",
		},
	})
}

// handleProcessExcel processes a spreadsheet already on disk.
//
// Query parameters:
//   - file_path: path relative to the data directory (default from config)
//   - columns: comma-separated column names to concatenate
//
// Domain failures come back as 400 with the core's message verbatim.
func (s *Server) handleProcessExcel(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	rel := q.Get("file_path")
	if rel == "" {
		rel = s.cfg.Process.DefaultFile
	}

	var columns []string
	if q.Has("columns") {
		columns = splitColumns(q.Get("columns"))
	} else {
		columns = s.cfg.Process.DefaultColumns
	}
	if len(columns) == 0 {
		respondFailure(w, r, http.StatusBadRequest, "Invalid columns provided")
		return
	}

	path, err := resolveDataPath(s.cfg.Process.DataDir, rel)
	if err != nil {
		respondFailure(w, r, http.StatusBadRequest, err.Error())
		return
	}

	logger := logging.WithFields(r.Context(), "file", path, "columns", strings.Join(columns, ","))
	logger.Info("processing spreadsheet")

	res := s.service.ProcessFile(r.Context(), path, columns)
	if !res.IsOk() {
		respondFailure(w, r, failureStatus(res.Err()), res.Err())
		return
	}

	logger.Info("processing complete", "rows", res.Value().RowCount())
	writeJSON(w, newProcessResponse(res.Value(), columns))
}

// handleProcessUpload processes an uploaded spreadsheet.
//
// Multipart form fields:
//   - file: the spreadsheet (.xlsx or .csv)
//   - columns: comma-separated column names to concatenate
func (s *Server) handleProcessUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.Process.MaxFileSize)

	file, header, err := r.FormFile("file")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			respondFailure(w, r, http.StatusRequestEntityTooLarge,
				"Uploaded file exceeds the maximum allowed size")
			return
		}
		respondFailure(w, r, http.StatusBadRequest, "No file provided")
		return
	}
	defer file.Close()

	columns := splitColumns(r.FormValue("columns"))
	if len(columns) == 0 {
		respondFailure(w, r, http.StatusBadRequest, "Invalid columns provided")
		return
	}

	logger := logging.WithFields(r.Context(), "file", header.Filename, "columns", strings.Join(columns, ","))
	logger.Info("processing uploaded spreadsheet", "size", header.Size)

	res := s.service.ProcessReader(r.Context(), file, header.Filename, columns)
	if !res.IsOk() {
		respondFailure(w, r, failureStatus(res.Err()), res.Err())
		return
	}

	logger.Info("processing complete", "rows", res.Value().RowCount())
	writeJSON(w, newProcessResponse(res.Value(), columns))
}

// handleHistory returns recent processing jobs, newest first.
func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	limit := parseIntParam(r, "limit", 20)
	jobs := s.service.RecentJobs(limit)
	writeJSON(w, map[string]any{
		"jobs":  jobs,
		"count": len(jobs),
	})
}

// handleStatus returns the current state of the processing limiter.
func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.service.LimiterStatus())
}

// newProcessResponse splits the transformed table for the API payload.
func newProcessResponse(t core.Table, columns []string) ProcessResponse {
	return ProcessResponse{
		Headers:             t.Header,
		Rows:                t.Rows,
		ConcatenatedColumns: columns,
		TotalRows:           t.RowCount(),
	}
}

// failureStatus picks the HTTP status for a domain failure. Everything
// is a bad request except limiter rejection, which is retryable.
func failureStatus(message string) int {
	if message == core.ErrTooManyJobs.Error() {
		return http.StatusServiceUnavailable
	}
	return http.StatusBadRequest
}

// splitColumns splits a comma-separated column list, trimming whitespace
// and dropping empty entries. Duplicates are kept.
func splitColumns(raw string) []string {
	parts := strings.Split(raw, ",")
	columns := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			columns = append(columns, p)
		}
	}
	return columns
}

// resolveDataPath joins rel onto the data directory, rejecting absolute
// paths and traversal outside it.
func resolveDataPath(dataDir, rel string) (string, error) {
	if filepath.IsAbs(rel) {
		return "", errors.New("invalid file path")
	}
	clean := filepath.Clean(rel)
	if clean == ".." || strings.HasPrefix(clean, ".."+string(os.PathSeparator)) {
		return "", errors.New("invalid file path")
	}
	return filepath.Join(dataDir, clean), nil
}

// parseIntParam parses an integer query parameter with a default value.
func parseIntParam(r *http.Request, name string, defaultVal int) int {
	val := r.URL.Query().Get(name)
	if val == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(val)
	if err != nil || i < 1 {
		return defaultVal
	}
	return i
}
