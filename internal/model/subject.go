package model

import "time"

// Subject is one graded course of a semester's catalog.
type Subject struct {
	ID         int       `json:"id"`
	Label      string    `json:"label"`
	Credit     float64   `json:"credit"`
	Semester   string    `json:"semester"`
	Department string    `json:"department"`
	Batch      string    `json:"batch"`
	Regulation int       `json:"regulation"`
	Blended    bool      `json:"blended"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// SubjectRequest is the payload for creating or updating a subject.
type SubjectRequest struct {
	Label      string  `json:"label" binding:"required,min=2,max=200"`
	Credit     float64 `json:"credit" binding:"required,gt=0,lte=30"`
	Semester   string  `json:"semester" binding:"required,max=32"`
	Department string  `json:"department" binding:"required,max=32"`
	Batch      string  `json:"batch" binding:"required,batch"`
	Regulation int     `json:"regulation" binding:"required,gt=0"`
}

// SubjectFilter narrows a catalog listing. Regulation is derived from Batch
// when it is zero.
type SubjectFilter struct {
	Semester   string `form:"semester"`
	Department string `form:"department"`
	Batch      string `form:"batch"`
	Regulation int    `form:"regulation" binding:"omitempty,gt=0"`
}

// BatchFilter narrows the distinct batch listing.
type BatchFilter struct {
	Semester   string `form:"semester"`
	Department string `form:"department"`
}
