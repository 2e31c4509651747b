package entity

// UploadResult describes a blob after it has been written to object storage.
type UploadResult struct {
	URL    string `json:"url"`
	Object string `json:"object"`
	Bucket string `json:"bucket"`
	Type   string `json:"type"`
	Size   int64  `json:"size"`
}

// BlobInfo is what is needed to serve a stored blob back.
type BlobInfo struct {
	Type string
	Size int64
}
