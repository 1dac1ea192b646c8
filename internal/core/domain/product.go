package domain

import "time"

// FileData describes an image stored in the blob store.
type FileData struct {
	FileName string `json:"fileName,omitempty" bson:"file_name,omitempty"`
	FilePath string `json:"filePath,omitempty" bson:"file_path,omitempty"`
	FileType string `json:"fileType,omitempty" bson:"file_type,omitempty"`
	FileSize string `json:"fileSize,omitempty" bson:"file_size,omitempty"`
}

// IsZero reports whether no image is attached.
func (f FileData) IsZero() bool {
	return f.FilePath == ""
}

// Product is an inventory record owned by a single user. Quantity and Price
// are kept as the client sent them.
type Product struct {
	ID          string    `json:"_id"`
	UserID      string    `json:"user"`
	Name        string    `json:"name"`
	SKU         string    `json:"sku"`
	Category    string    `json:"category"`
	Quantity    string    `json:"quantity"`
	Price       string    `json:"price"`
	Description string    `json:"description"`
	Image       FileData  `json:"image"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
