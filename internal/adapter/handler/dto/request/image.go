package request

type ListImagesRequest struct {
	Page    int `form:"page" binding:"omitempty,min=1"`
	PerPage int `form:"per_page" binding:"omitempty,min=1,max=100"`
}

type UploadURLRequest struct {
	Filename    string `json:"filename" binding:"required,max=255"`
	ContentType string `json:"contentType" binding:"required"`
}

type RegisterImageRequest struct {
	StorageKey   string `json:"storageKey" binding:"required,max=512"`
	OriginalName string `json:"originalName" binding:"omitempty,max=255"`
	ContentType  string `json:"contentType" binding:"required"`
	FileSize     int64  `json:"fileSize" binding:"required,min=1"`
}
