package impl

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	domainerrors "pawmart/internal/domain/errors"
	"pawmart/internal/domain/service"
	"pawmart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// uploadKey builds a collision-free object key under the given prefix while
// keeping the original extension so the store serves a sensible content type.
func uploadKey(prefix, fileName string) string {
	ext := strings.ToLower(path.Ext(fileName))

	return fmt.Sprintf("%s/%d-%s%s", prefix, time.Now().UnixNano(), uuid.NewString(), ext)
}

// uploadOne streams a single asset to the object store and returns its URL.
func uploadOne(ctx context.Context, storage service.MediaStorage, prefix string, upload *usecase.MediaUpload) (string, error) {
	if upload == nil || upload.Body == nil {
		return "", errors.Wrap(domainerrors.ErrValidation, "upload body is required")
	}

	url, err := storage.Upload(ctx, uploadKey(prefix, upload.FileName), upload.ContentType, upload.Body)
	if err != nil {
		return "", errors.Wrap(err, "failed to upload media asset")
	}

	return url, nil
}

// uploadAll streams every asset in order. Record writes only happen after
// every upload succeeded, so a partial failure leaves the catalog untouched.
func uploadAll(ctx context.Context, storage service.MediaStorage, prefix string, uploads []usecase.MediaUpload) ([]string, error) {
	if len(uploads) == 0 {
		return nil, nil
	}

	urls := make([]string, 0, len(uploads))
	for i := range uploads {
		url, err := uploadOne(ctx, storage, prefix, &uploads[i])
		if err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}

	return urls, nil
}
