package controllers

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"

	"github.com/ManuelReschke/PixelMart/internal/pkg/filestore"
	"github.com/ManuelReschke/PixelMart/internal/pkg/upload"
)

const maxUploadSize = 5 * 1024 * 1024 // 5 MiB

// HandleProductImageUpload stores a catalog image in object storage and
// returns its public URL. Admin only, enforced on the route.
func HandleProductImageUpload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No file uploaded"})
	}

	if fileHeader.Size > maxUploadSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "File too large, maximum is 5 MB"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Something went wrong"})
	}
	defer file.Close()

	head := make([]byte, 512)
	n, _ := file.Read(head)
	detectedMime, err := upload.ValidateImageBySniff(fileHeader.Filename, head[:n])
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if _, err := file.Seek(0, 0); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Something went wrong"})
	}

	cfg := filestore.NewConfigFromEnv()
	if !cfg.IsEnabled() {
		log.Errorf("[Upload] object storage is not configured")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Something went wrong"})
	}

	client, err := filestore.NewClient(cfg)
	if err != nil {
		log.Errorf("[Upload] storage client: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Something went wrong"})
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	objectKey := "products/upload_" + uuid.New().String() + ext

	ctx, cancel := context.WithTimeout(c.UserContext(), 30*time.Second)
	defer cancel()

	stored, err := client.Upload(ctx, objectKey, file, fileHeader.Size, detectedMime)
	if err != nil {
		log.Errorf("[Upload] upload of %s failed: %v", objectKey, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to store file"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"url": stored.URL})
}
