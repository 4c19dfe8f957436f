// Package meili implements the emote search index on Meilisearch.
package meili

import (
	"context"
	"fmt"

	"github.com/meilisearch/meilisearch-go"

	"orbit/internal/domain"
)

const indexUID = "emotes"

// Index implements domain.EmoteIndex against a Meilisearch instance.
type Index struct {
	idx *meilisearch.Index
}

// New connects to Meilisearch and configures the emotes index to search on
// names only.
func New(host, apiKey string) (*Index, error) {
	client := meilisearch.NewClient(meilisearch.ClientConfig{
		Host:   host,
		APIKey: apiKey,
	})

	idx := client.Index(indexUID)
	if _, err := idx.UpdateSearchableAttributes(&[]string{"name"}); err != nil {
		return nil, fmt.Errorf("configure %s index: %w", indexUID, err)
	}
	return &Index{idx: idx}, nil
}

// document is the indexed projection of an emote; ids stay strings to match
// the API's serialized form.
type document struct {
	ID   string   `json:"id"`
	Name string   `json:"name"`
	Tags []string `json:"tags"`
}

// Index adds or replaces an emote document.
func (i *Index) Index(ctx context.Context, e *domain.Emote) error {
	_, err := i.idx.AddDocuments([]document{{
		ID:   e.ID.String(),
		Name: e.Name,
		Tags: e.Tags,
	}})
	return err
}

// Remove deletes an emote document.
func (i *Index) Remove(ctx context.Context, id domain.ID) error {
	_, err := i.idx.DeleteDocument(id.String())
	return err
}

// Search returns the ids of emotes matching the query, best match first.
func (i *Index) Search(ctx context.Context, query string, limit int) ([]domain.ID, error) {
	res, err := i.idx.Search(query, &meilisearch.SearchRequest{
		Limit: int64(limit),
	})
	if err != nil {
		return nil, err
	}

	ids := make([]domain.ID, 0, len(res.Hits))
	for _, hit := range res.Hits {
		doc, ok := hit.(map[string]any)
		if !ok {
			continue
		}
		raw, ok := doc["id"].(string)
		if !ok {
			continue
		}
		id, err := domain.ParseID(raw)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}
