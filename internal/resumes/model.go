package resumes

import "time"

// Record describes one uploaded resume and its derived analysis. Records are
// written once by Save and never mutated.
type Record struct {
	ID         string    `json:"id"`
	FileName   string    `json:"fileName"`
	UploadDate time.Time `json:"uploadDate"`
	FileType   string    `json:"fileType"`
	FileSize   int64     `json:"fileSize"`
	Analysis   Analysis  `json:"analysis"`
}

// Upload is the file handed to Save.
type Upload struct {
	Name string
	Type string
	Data []byte
}

// Resume is a record together with its file content.
type Resume struct {
	Record Record
	File   []byte
}
