package store

import (
	"context"
	"log"
)

// LoadLanguage returns the persisted UI language, or fallback when none
// has been saved or the storage cannot be read.
func LoadLanguage(ctx context.Context, kv KV, fallback string) string {
	v, ok, err := kv.Get(ctx, LanguageKey)
	if err != nil {
		log.Printf("store: read language: %v", err)
		return fallback
	}
	if !ok || v == "" {
		return fallback
	}
	return v
}

// SaveLanguage persists the UI language.
func SaveLanguage(ctx context.Context, kv KV, code string) error {
	return kv.Set(ctx, LanguageKey, code)
}
