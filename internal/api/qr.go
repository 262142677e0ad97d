package api

import (
	"errors"                             // Error inspection
	"io"                                 // Reading the upload
	"net/http"                           // HTTP status codes
	"payment_portal/internal/middleware" // Request scoped logging
	"payment_portal/internal/service"    // Account service
	"payment_portal/internal/utils"      // Filename sanitising
	"strconv"                            // Form value parsing

	"github.com/gabriel-vasile/mimetype" // Content sniffing
	"github.com/gin-gonic/gin"           // Gin web framework
	"github.com/sirupsen/logrus"         // Logging library
)

// detectMimeType trusts the part header unless it is missing or generic
func detectMimeType(declared string, data []byte) string {
	if declared != "" && declared != service.DefaultMimeType {
		return declared
	}
	return mimetype.Detect(data).String()
}

// UploadQRHandler stores a QR image sent as multipart field qr_image for form field user_id
func UploadQRHandler(svc *service.AccountService, maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes) // Bound the upload
		fileHeader, err := c.FormFile("qr_image")
		if err != nil {
			var tooLarge *http.MaxBytesError
			switch {
			case errors.As(err, &tooLarge):
				c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "File too large"})
			case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
				c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
			default:
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid upload"})
			}
			return
		}
		userID, err := strconv.ParseUint(c.PostForm("user_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
			return
		}
		file, err := fileHeader.Open()
		if err != nil {
			respondError(c, err)
			return
		}
		defer file.Close()
		data, err := io.ReadAll(file)
		if err != nil {
			respondError(c, err)
			return
		}
		// FormFile never returns a part with filename=""; a name that sanitises to "" is rejected by StoreQRCode
		filename := utils.SecureFilename(fileHeader.Filename)
		mimeType := detectMimeType(fileHeader.Header.Get("Content-Type"), data)
		if err := svc.StoreQRCode(c.Request.Context(), uint(userID), data, filename, mimeType); err != nil {
			respondError(c, err)
			return
		}
		// Log successful upload
		middleware.Log(c).WithFields(logrus.Fields{
			"user_id":   userID,    // Owner
			"filename":  filename,  // Sanitised name
			"mime_type": mimeType,  // Stored content type
			"size":      len(data), // Bytes stored
		}).Info("QR code uploaded")
		c.JSON(http.StatusCreated, gin.H{"message": "QR code uploaded successfully"})
	}
}

// UserQRHandler streams the user's latest QR image, or an empty 404
func UserQRHandler(svc *service.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := userIDParam(c)
		if !ok {
			c.Status(http.StatusNotFound)
			return
		}
		data, mimeType, err := svc.GetLatestQRCode(c.Request.Context(), userID)
		if errors.Is(err, service.ErrNotFound) {
			c.Status(http.StatusNotFound) // Nothing uploaded yet
			return
		} else if err != nil {
			respondError(c, err)
			return
		}
		c.Data(http.StatusOK, mimeType, data)
	}
}
