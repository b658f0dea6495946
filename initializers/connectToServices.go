package initializers

import (
	"context"
	"log"
	"time"

	"github.com/Kariqs/shopcart-api/utils"
)

// Images and Mailer stay nil when their settings are missing. Handlers check
// for nil before use, and tests swap in fakes.
var (
	Images utils.ImageStore
	Mailer utils.Mailer
)

// ConnectToStorage selects the image backend from STORAGE_DRIVER; both backends
// write into S3_BUCKET.
func ConnectToStorage() {
	if Config.S3Bucket == "" {
		log.Println("S3_BUCKET not set, image uploads disabled.")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var (
		store utils.ImageStore
		err   error
	)
	switch Config.StorageDriver {
	case "minio":
		store, err = utils.NewMinIOImageStore(ctx, Config.MinIOEndpoint, Config.MinIOAccessKey,
			Config.MinIOSecretKey, Config.S3Bucket, Config.MinIOUseSSL)
	case "s3", "":
		store, err = utils.NewS3ImageStore(ctx, Config.S3Bucket)
	default:
		log.Printf("Unknown STORAGE_DRIVER %q, image uploads disabled.", Config.StorageDriver)
		return
	}
	if err != nil {
		log.Println("Failed to configure image storage, image uploads disabled:", err)
		return
	}

	Images = store
	log.Printf("Image storage (%s) configured for bucket %s", Config.StorageDriver, Config.S3Bucket)
}

func SetupMailer() {
	if Config.SMTPHost == "" || Config.FromEmail == "" {
		log.Println("SMTP_HOST or FROM_EMAIL not set, outgoing mail disabled.")
		return
	}

	Mailer = utils.NewSMTPMailer(utils.SMTPSettings{
		Host:     Config.SMTPHost,
		Port:     Config.SMTPPort,
		Username: Config.SMTPUsername,
		Password: Config.SMTPPassword,
		From:     Config.FromEmail,
	})
}
