package config

import (
	"fmt"
	"strings"
)

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// CatalogVersionKey holds a counter bumped on every subject or regulation
// write. Catalog cache keys embed it, so a bump orphans every cached listing.
func (r *CacheKeyStruct) CatalogVersionKey() string {
	return "catalog:version"
}

// SubjectsKey returns the cache key for one filtered subject listing.
func (r *CacheKeyStruct) SubjectsKey(version int64, semester, department, batch string, regulation int) string {
	return fmt.Sprintf("catalog:v%d:subjects:%s:%s:%s:%d", version,
		strings.ToLower(strings.TrimSpace(semester)), strings.ToLower(strings.TrimSpace(department)),
		strings.TrimSpace(batch), regulation)
}

// BatchesKey returns the cache key for the distinct batch list.
func (r *CacheKeyStruct) BatchesKey(version int64, semester, department string) string {
	return fmt.Sprintf("catalog:v%d:batches:%s:%s", version,
		strings.ToLower(strings.TrimSpace(semester)), strings.ToLower(strings.TrimSpace(department)))
}

// ActiveRegulationsKey returns the cache key for the active registry rows.
func (r *CacheKeyStruct) ActiveRegulationsKey(version int64) string {
	return fmt.Sprintf("catalog:v%d:regulations:active", version)
}

// WizardKey returns the cache key for a student's selection wizard.
func (r *CacheKeyStruct) WizardKey(id string) string {
	return fmt.Sprintf("wizard:%s", id)
}

// SubmissionFeedChannel is the Redis PubSub channel carrying new submissions.
func (r *CacheKeyStruct) SubmissionFeedChannel() string {
	return "submissions:feed"
}

var CacheKey = NewCacheKeyStruct()
