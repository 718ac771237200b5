package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/alexanderramin/wbsimport/internal/importer"
	"github.com/alexanderramin/wbsimport/internal/service"
)

// multipartMemory is how much of a multipart body is kept in memory before
// spilling to temporary files.
const multipartMemory = 8 << 20

type UploadController struct {
	uploads  service.UploadService
	logger   *logrus.Logger
	maxBytes int64
}

func NewUploadController(uploads service.UploadService, logger *logrus.Logger, maxBytes int64) *UploadController {
	return &UploadController{uploads: uploads, logger: logger, maxBytes: maxBytes}
}

func (c *UploadController) Register(r *mux.Router) {
	r.HandleFunc("/xer/", c.Create).Methods(http.MethodPost)
	r.HandleFunc("/xer", c.Create).Methods(http.MethodPost)
}

// Create accepts a multipart upload in the "file" field and imports it.
func (c *UploadController) Create(w http.ResponseWriter, r *http.Request) {
	if c.maxBytes > 0 {
		if r.ContentLength > c.maxBytes {
			writeError(w, http.StatusRequestEntityTooLarge, "upload exceeds size limit")
			return
		}
		r.Body = http.MaxBytesReader(w, r.Body, c.maxBytes)
	}

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "upload exceeds size limit")
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "no file found in field \"file\"")
		return
	}
	defer file.Close()

	result, err := c.uploads.Upload(r.Context(), header.Filename, file)
	switch {
	case errors.Is(err, importer.ErrUnsupportedFormat), errors.Is(err, service.ErrUnreadableSource):
		writeError(w, http.StatusBadRequest, err.Error())
		return
	case err != nil:
		c.logger.WithError(err).WithField("filename", header.Filename).Error("upload failed")
		writeError(w, http.StatusInternalServerError, "upload failed")
		return
	}

	resp := uploadResponse{PublicID: result.FileID, Projects: make([]projectResultDTO, 0, len(result.Projects))}
	for _, p := range result.Projects {
		resp.Projects = append(resp.Projects, toProjectResultDTO(p))
	}
	writeJSON(w, http.StatusOK, resp)
}
