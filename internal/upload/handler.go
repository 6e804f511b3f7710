package upload

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/demoapi/upload-service/internal/response"
	"github.com/demoapi/upload-service/internal/storage"
)

// FormField is the multipart field carrying the file.
const FormField = "file"

// Client-facing messages. Failure causes are logged, never returned.
const (
	MsgUploaded = "File upload successful"
	MsgFailed   = "File upload failed"
	MsgNoFile   = "No file to upload"
)

// Handler holds the HTTP handler for the upload endpoint.
type Handler struct {
	svc       *Service
	log       *zap.Logger
	maxMemory int64
}

// NewHandler creates a new upload Handler. maxMemory is how much of a
// multipart body is buffered in memory before parts spill to temp files.
func NewHandler(svc *Service, log *zap.Logger, maxMemory int64) *Handler {
	return &Handler{svc: svc, log: log, maxMemory: maxMemory}
}

// Upload godoc
//
//	@Summary		Upload a file
//	@Description	Stores the multipart field "file" in the configured bucket under a new UUID key.
//	@Tags			upload
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			file	formData	file	true	"File to upload"
//	@Success		200		{object}	response.Body
//	@Failure		400		{object}	response.Body
//	@Failure		500		{object}	response.Body
//	@Router			/upload [post]
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	reqID := zap.String("request_id", middleware.GetReqID(r.Context()))

	if err := r.ParseMultipartForm(h.maxMemory); err != nil {
		h.log.Debug("upload: unreadable form", reqID, zap.Error(err))
		response.BadRequest(w, MsgNoFile)
		return
	}
	defer r.MultipartForm.RemoveAll() //nolint:errcheck

	file, header, err := r.FormFile(FormField)
	if err != nil {
		h.log.Debug("upload: no file field", reqID, zap.Error(err))
		response.BadRequest(w, MsgNoFile)
		return
	}
	defer file.Close()

	key, err := h.svc.Upload(r.Context(), fileFromPart(file, header))
	if err != nil {
		h.logFailure(err, reqID)
		response.InternalError(w, MsgFailed)
		return
	}

	h.log.Info("upload stored",
		reqID,
		zap.String("key", key),
		zap.Int64("size", header.Size),
	)
	response.OK(w, response.Body{Message: MsgUploaded, Key: key})
}

func fileFromPart(file multipart.File, header *multipart.FileHeader) File {
	return File{
		Body:        file,
		Size:        header.Size,
		ContentType: header.Header.Get("Content-Type"),
	}
}

func (h *Handler) logFailure(err error, reqID zap.Field) {
	var serr *storage.Error
	if errors.As(err, &serr) {
		h.log.Error("upload failed",
			reqID,
			zap.String("op", serr.Op),
			zap.String("bucket", serr.Bucket),
			zap.String("key", serr.Key),
			zap.String("code", serr.Code),
			zap.Bool("timeout", serr.Timeout()),
			zap.Error(serr.Err),
		)
		return
	}
	h.log.Error("upload failed", reqID, zap.Error(err))
}
