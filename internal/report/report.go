package report

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"quizconv/internal/contenthash"
	"quizconv/internal/question"
)

// timestampLayout is used for every timestamp written to report files.
const timestampLayout = time.RFC3339

var (
	now      = time.Now
	newRunID = uuid.NewString
)

// Validation is the outcome of comparing an original question set with its conversion.
type Validation struct {
	Passed         bool     `json:"validation_passed"`
	OriginalFile   string   `json:"original_file"`
	ConvertedFile  string   `json:"converted_file"`
	OriginalHash   string   `json:"original_hash"`
	ConvertedHash  string   `json:"converted_hash"`
	OriginalCount  int      `json:"original_question_count"`
	ConvertedCount int      `json:"converted_question_count"`
	HashMatch      bool     `json:"hash_match"`
	CountMatch     bool     `json:"count_match"`
	Differences    []string `json:"differences,omitempty"`
	RunID          string   `json:"run_id"`
	GeneratedAt    string   `json:"generated_at"`
}

// Validate hashes both question sets and compares them. Differences are only
// collected when the digests disagree.
func Validate(originalFile, convertedFile string, original, converted []question.Record) (Validation, error) {
	originalHash, err := contenthash.Hash(original)
	if err != nil {
		return Validation{}, fmt.Errorf("hash original: %w", err)
	}
	convertedHash, err := contenthash.Hash(converted)
	if err != nil {
		return Validation{}, fmt.Errorf("hash converted: %w", err)
	}

	result := Validation{
		OriginalFile:   originalFile,
		ConvertedFile:  convertedFile,
		OriginalHash:   originalHash,
		ConvertedHash:  convertedHash,
		OriginalCount:  len(original),
		ConvertedCount: len(converted),
		HashMatch:      originalHash == convertedHash,
		CountMatch:     len(original) == len(converted),
		RunID:          newRunID(),
		GeneratedAt:    now().Format(timestampLayout),
	}
	result.Passed = result.HashMatch
	if !result.Passed {
		for _, diff := range contenthash.Compare(original, converted) {
			result.Differences = append(result.Differences, diff.Message)
		}
	}
	return result, nil
}

// HashRecord is the content fingerprint of one question file.
type HashRecord struct {
	File          string `json:"file"`
	QuestionCount int    `json:"question_count"`
	ContentHash   string `json:"content_hash"`
	Timestamp     string `json:"timestamp"`
	RunID         string `json:"run_id"`
}

// NewHashRecord fingerprints the records extracted from file.
func NewHashRecord(file string, records []question.Record) (HashRecord, error) {
	digest, err := contenthash.Hash(records)
	if err != nil {
		return HashRecord{}, fmt.Errorf("hash %s: %w", file, err)
	}
	return HashRecord{
		File:          file,
		QuestionCount: len(records),
		ContentHash:   digest,
		Timestamp:     now().Format(timestampLayout),
		RunID:         newRunID(),
	}, nil
}
