package handlers

import (
	"io"
	"strconv"

	"har-media-exporter/internal/domain/dto"
	"har-media-exporter/internal/usecases"
	consts "har-media-exporter/pkg/constants"
	"har-media-exporter/pkg/errors"

	"github.com/gofiber/fiber/v2"
)

type ExtractHandler struct {
	extractService usecases.ExtractService
}

func NewExtractHandler(extractService usecases.ExtractService) *ExtractHandler {
	return &ExtractHandler{
		extractService: extractService,
	}
}

// Extract
//
// @Summary      Extract media from a HAR capture
// @Description  Uploads a .har file, extracts embedded image resources and creates an extraction session
// @Tags         Extract
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "HAR capture file"
// @Success      200   {object}  dto.ExtractResponse
// @Failure      400   {object}  dto.ErrorResponse "Invalid extension or malformed HAR"
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /extract [post]
func (h *ExtractHandler) Extract(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error:   "missing_file",
			Message: "form field \"file\" is required",
		})
	}

	f, err := fileHeader.Open()
	if err != nil {
		return errors.HandleError(c, errors.ErrInternal(err))
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return errors.HandleError(c, errors.ErrInternal(err))
	}

	resp, err := h.extractService.Extract(fileHeader.Filename, data)
	if err != nil {
		return errors.HandleError(c, err)
	}

	return c.JSON(resp)
}

// GetSession
//
// @Summary      Get Extraction Session
// @Description  Returns the media listing of an existing extraction session
// @Tags         Extract
// @Produce      json
// @Param        id   path      string true "Session ID"
// @Success      200  {object}  dto.SessionResponse
// @Failure      404  {object}  dto.ErrorResponse "Session not found or expired"
// @Router       /extract/{id} [get]
func (h *ExtractHandler) GetSession(c *fiber.Ctx) error {
	resp, err := h.extractService.GetSession(c.Params("id"))
	if err != nil {
		return errors.HandleError(c, err)
	}
	return c.JSON(resp)
}

// DownloadArchive
//
// @Summary      Download media.zip
// @Description  Builds the archive for a session and streams it as media.zip
// @Tags         Extract
// @Produce      application/zip
// @Param        id   path      string true "Session ID"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /extract/{id}/archive [get]
func (h *ExtractHandler) DownloadArchive(c *fiber.Ctx) error {
	out, result, err := h.extractService.BuildArchive(c.Params("id"))
	if err != nil {
		return errors.HandleError(c, err)
	}

	c.Set(fiber.HeaderContentType, "application/zip")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+consts.ArchiveName+`"`)
	c.Set("X-Entry-Count", strconv.Itoa(result.EntryCount))
	c.Set("X-Decode-Failures", strconv.Itoa(result.DecodeFailures))
	return c.Send(out)
}

// GetMediaItem
//
// @Summary      Get a single media item
// @Description  Returns one decoded media resource with its original MIME type
// @Tags         Extract
// @Param        id     path  string true "Session ID"
// @Param        index  path  int    true "Media index within the session"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /extract/{id}/media/{index} [get]
func (h *ExtractHandler) GetMediaItem(c *fiber.Ctx) error {
	index, err := strconv.Atoi(c.Params("index"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error:   "invalid_index",
			Message: "media index must be an integer",
		})
	}

	data, mimeType, err := h.extractService.GetMediaItem(c.Params("id"), index)
	if err != nil {
		return errors.HandleError(c, err)
	}

	c.Set(fiber.HeaderContentType, mimeType)
	return c.Send(data)
}
