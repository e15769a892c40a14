package handler

import (
	"net/http"
	"strconv"

	"draftdesk/internal/delivery/http/response"
	"draftdesk/internal/domain/entity"
	domainerrors "draftdesk/internal/domain/errors"
	"draftdesk/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AttachmentHandler holds dependencies for lead attachment handlers.
type AttachmentHandler struct {
	uc usecase.AttachmentUsecase
}

// NewAttachmentHandler is the constructor for AttachmentHandler, injected by Fx.
func NewAttachmentHandler(uc usecase.AttachmentUsecase) *AttachmentHandler {
	return &AttachmentHandler{uc: uc}
}

type uploadFailureResponse struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

type uploadAttachmentsResponse struct {
	Uploaded     []entity.Attachment     `json:"uploaded"`
	Failed       []uploadFailureResponse `json:"failed"`
	CORSDetected bool                    `json:"corsDetected"`
}

type listAttachmentsResponse struct {
	Attachments  []entity.Attachment `json:"attachments"`
	FromFallback bool                `json:"fromFallback"`
}

// Upload accepts a multipart form and stores each file on the lead, one at a
// time. Partial failure is reported per file, not as a request error.
func (h *AttachmentHandler) Upload(c echo.Context) error {
	form, err := c.MultipartForm()
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Expected multipart form upload")
	}

	headers := form.File["files"]
	if len(headers) == 0 {
		return response.BindingError(c, "INVALID_INPUT", "No files in upload")
	}

	in := usecase.UploadAttachmentsInput{LeadID: c.Param("id")}
	opened := make([]interface{ Close() error }, 0, len(headers))
	defer func() {
		for _, f := range opened {
			_ = f.Close()
		}
	}()

	for _, header := range headers {
		file, err := header.Open()
		if err != nil {
			return errors.Wrap(err, "failed to open uploaded file")
		}
		opened = append(opened, file)

		in.Files = append(in.Files, usecase.UploadFile{
			Name:        header.Filename,
			ContentType: header.Header.Get(echo.HeaderContentType),
			Size:        header.Size,
			Body:        file,
		})
	}

	out, err := h.uc.Upload(c.Request().Context(), in)
	if err != nil {
		return errors.WithStack(err)
	}

	failed := make([]uploadFailureResponse, 0, len(out.Failed))
	for _, f := range out.Failed {
		failed = append(failed, uploadFailureResponse{Name: f.Name, Reason: f.Reason})
	}

	uploaded := out.Uploaded
	if uploaded == nil {
		uploaded = []entity.Attachment{}
	}

	return response.Success(c, http.StatusOK, uploadAttachmentsResponse{
		Uploaded:     uploaded,
		Failed:       failed,
		CORSDetected: out.CORSDetected,
	}, "Upload processed")
}

// List returns the lead's attachments.
func (h *AttachmentHandler) List(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	attachments := out.Attachments
	if attachments == nil {
		attachments = []entity.Attachment{}
	}

	return response.Success(c, http.StatusOK, listAttachmentsResponse{
		Attachments:  attachments,
		FromFallback: out.FromFallback,
	}, "Attachments listed")
}

// Delete removes the attachment at the given index from the lead's metadata.
func (h *AttachmentHandler) Delete(c echo.Context) error {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return errors.WithStack(domainerrors.ErrAttachmentIndex.WithDetails("index must be an integer, got " + c.Param("index")))
	}

	if err := h.uc.Delete(c.Request().Context(), c.Param("id"), index); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Attachment removed")
}
