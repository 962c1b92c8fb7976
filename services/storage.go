package services

import "mime/multipart"

// FileStore is the external object storage the portal keeps uploaded
// documents in. Upload must succeed before a Document resource is created;
// Delete is best-effort (a failed delete is logged, never fatal).
type FileStore interface {
	Upload(fileHeader *multipart.FileHeader, fileID string) (publicURL, objectPath string, err error)
	Delete(publicURL string) error
}
