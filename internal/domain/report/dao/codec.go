package dao

import (
	"encoding/json"
	"fmt"

	analysis "github.com/vadim/neo-insight/internal/domain/analysis/entity"
	"github.com/vadim/neo-insight/internal/domain/report/entity"
)

// encodeBody serializes the analysis payload of a report
func encodeBody(r *entity.Report) (result, posts []byte, err error) {
	result, err = json.Marshal(r.Result)
	if err != nil {
		return nil, nil, fmt.Errorf("encoding result: %w", err)
	}

	p := r.Posts
	if p == nil {
		p = []analysis.Post{}
	}
	posts, err = json.Marshal(p)
	if err != nil {
		return nil, nil, fmt.Errorf("encoding posts: %w", err)
	}
	return result, posts, nil
}

// decodeBody restores the analysis payload of a report
func decodeBody(r *entity.Report, result, posts []byte) error {
	if err := json.Unmarshal(result, &r.Result); err != nil {
		return fmt.Errorf("decoding result: %w", err)
	}
	if len(posts) > 0 {
		if err := json.Unmarshal(posts, &r.Posts); err != nil {
			return fmt.Errorf("decoding posts: %w", err)
		}
	}
	return nil
}
