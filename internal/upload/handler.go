package upload

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/imagedrop/service/internal/response"
)

// Handler holds HTTP handlers for upload endpoints.
type Handler struct {
	svc      *Service
	maxBytes int64
}

// NewHandler creates a new upload Handler. maxBytes caps the request body
// size for uploads; 0 means no limit.
func NewHandler(svc *Service, maxBytes int64) *Handler {
	return &Handler{svc: svc, maxBytes: maxBytes}
}

type messageBody struct {
	Message string `json:"message" example:"Upload successful"`
}

type uploadBody struct {
	Message string  `json:"message" example:"Upload successful"`
	Key     string  `json:"key"     example:"images/photo.png"`
	URL     string  `json:"url"     example:"https://b1.s3.us-east-1.amazonaws.com/images/photo.png"`
	Upload  *Record `json:"upload"`
}

type historyBody struct {
	Success bool           `json:"success" example:"true"`
	Uploads []HistoryEntry `json:"uploads"`
}

type directoriesBody struct {
	Success     bool     `json:"success" example:"true"`
	Directories []string `json:"directories"`
}

// Upload godoc
//
//	@Summary		Upload an image
//	@Description	Store the uploaded file in the target bucket/directory. If an object with the same name already exists, a timestamp suffix is appended to the file name.
//	@Tags			aws
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			image		formData	file	true	"Image file"
//	@Param			bucket		formData	string	true	"Target bucket (must be allow-listed)"
//	@Param			directory	formData	string	true	"Target directory"
//	@Success		200			{object}	uploadBody
//	@Failure		400			{object}	messageBody
//	@Failure		401			{object}	messageBody
//	@Failure		500			{object}	messageBody
//	@Router			/aws/upload [post]
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	if h.maxBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes)
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		response.BadRequest(w, "No file uploaded")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	result, err := h.svc.ResolveAndStore(r.Context(), StoreInput{
		Bucket:      r.FormValue("bucket"),
		Directory:   r.FormValue("directory"),
		FileName:    header.Filename,
		ContentType: contentType,
		Content:     file,
		Size:        header.Size,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrBucketNotAllowed):
			response.BadRequest(w, "Bucket is not allowed")
		case errors.Is(err, ErrMissingDirectory):
			response.BadRequest(w, "Directory is required")
		case errors.Is(err, ErrMissingFile):
			response.BadRequest(w, "No file uploaded")
		default:
			log.Printf("upload failed: %v", err)
			response.InternalError(w, "Upload failed")
		}
		return
	}

	log.Printf("stored %q as %q (%d bytes, %s)", header.Filename, result.Key, header.Size, contentType)

	response.JSON(w, http.StatusOK, uploadBody{
		Message: "Upload successful",
		Key:     result.Key,
		URL:     result.URL,
		Upload:  result.Record,
	})
}

// History godoc
//
//	@Summary		Upload history
//	@Description	Return the most recent uploads, newest first.
//	@Tags			aws
//	@Produce		json
//	@Param			limit	query		int	false	"Maximum records to return"	default(5)
//	@Success		200		{object}	historyBody
//	@Failure		401		{object}	messageBody
//	@Failure		500		{object}	messageBody
//	@Router			/aws/history [get]
func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil {
		limit = 0 // service applies the default
	}

	uploads, err := h.svc.History(r.Context(), limit)
	if err != nil {
		log.Printf("history failed: %v", err)
		response.InternalError(w, "Failed to fetch upload history")
		return
	}

	response.JSON(w, http.StatusOK, historyBody{Success: true, Uploads: uploads})
}

// Directories godoc
//
//	@Summary		List bucket directories
//	@Description	Return the top-level directory prefixes of an allow-listed bucket.
//	@Tags			aws
//	@Produce		json
//	@Param			bucket	query		string	true	"Bucket to inspect"
//	@Success		200		{object}	directoriesBody
//	@Failure		400		{object}	messageBody
//	@Failure		401		{object}	messageBody
//	@Failure		500		{object}	messageBody
//	@Router			/aws/directories [get]
func (h *Handler) Directories(w http.ResponseWriter, r *http.Request) {
	dirs, err := h.svc.Directories(r.Context(), r.URL.Query().Get("bucket"))
	if errors.Is(err, ErrBucketNotAllowed) {
		response.BadRequest(w, "Bucket is not allowed")
		return
	}
	if err != nil {
		log.Printf("directory listing failed: %v", err)
		response.InternalError(w, "Failed to list directories")
		return
	}
	if dirs == nil {
		dirs = []string{}
	}

	response.JSON(w, http.StatusOK, directoriesBody{Success: true, Directories: dirs})
}
