package upload

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"path"
	"path/filepath"
	"strings"

	"github.com/DhavalSuthar-24/musclemyths/pkg/responses"
	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// FieldName is the multipart field carrying files.
const FieldName = "media"

// PublicPrefix is where the router serves the upload directory.
const PublicPrefix = "/uploads"

// allowed maps an accepted extension to the content type its bytes must
// sniff as.
var allowed = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".mp4":  "video/mp4",
	".mov":  "video/quicktime",
	".avi":  "video/x-msvideo",
}

type UploadController struct {
	dir      string
	maxBytes int64
}

func NewUploadController(dir string, maxBytes int64) *UploadController {
	return &UploadController{dir: dir, maxBytes: maxBytes}
}

func checkType(fh *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	want, ok := allowed[ext]
	if !ok {
		return "", fmt.Errorf("%s: images and videos only", fh.Filename)
	}
	f, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("%s: %w", fh.Filename, err)
	}
	defer f.Close()

	mt, err := mimetype.DetectReader(f)
	if err != nil {
		return "", fmt.Errorf("%s: %w", fh.Filename, err)
	}
	if !mt.Is(want) {
		return "", fmt.Errorf("%s: content is %s, not %s", fh.Filename, mt.String(), want)
	}
	return ext, nil
}

// UploadMedia godoc
// @Summary Upload images or videos
// @Description Accepts jpg, jpeg, png, mp4, mov and avi files in the "media" field
// @Tags Upload
// @Accept multipart/form-data
// @Produce json
// @Param media formData file true "Files"
// @Success 201 {object} responses.SuccessResponse{data=[]string}
// @Failure 400 {object} responses.ErrorResponse "No files or wrong type"
// @Router /upload [post]
// @Security BearerAuth
func (uc *UploadController) UploadMedia(c *gin.Context) {
	if uc.maxBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, uc.maxBytes)
	}
	form, err := c.MultipartForm()
	if err != nil {
		responses.BadRequest(c, "Invalid upload: "+err.Error())
		return
	}
	files := form.File[FieldName]
	if len(files) == 0 {
		responses.BadRequest(c, "No files uploaded")
		return
	}

	exts := make([]string, len(files))
	for i, fh := range files {
		ext, err := checkType(fh)
		if err != nil {
			responses.BadRequest(c, err.Error())
			return
		}
		exts[i] = ext
	}

	paths := make([]string, 0, len(files))
	for i, fh := range files {
		name := FieldName + "-" + uuid.NewString() + exts[i]
		if err := c.SaveUploadedFile(fh, filepath.Join(uc.dir, name)); err != nil {
			responses.SendAppError(c, fmt.Errorf("save %s: %w", fh.Filename, err))
			return
		}
		paths = append(paths, path.Join(PublicPrefix, name))
	}
	responses.SendSuccess(c, http.StatusCreated, "Files uploaded", paths)
}
