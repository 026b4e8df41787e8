package model

import "time"

type Category string

type Visibility string

const (
	CategoryDevelopment Category = "development"
	CategoryDesign      Category = "design"
	CategoryMarketing   Category = "marketing"
	CategoryOperations  Category = "operations"
	CategorySupport     Category = "support"
	CategoryOther       Category = "other"
)

const (
	VisibilityPrivate Visibility = "private"
	VisibilityPublic  Visibility = "public"
)

type Workspace struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Category    Category   `json:"category"`
	Visibility  Visibility `json:"visibility"`
	Code        string     `json:"code"`
	CreatedBy   int64      `json:"created_by"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (c Category) Valid() bool {
	switch c {
	case CategoryDevelopment, CategoryDesign, CategoryMarketing,
		CategoryOperations, CategorySupport, CategoryOther:
		return true
	}
	return false
}

func (v Visibility) Valid() bool {
	return v == VisibilityPrivate || v == VisibilityPublic
}
