package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/MrSnakeDoc/lune/internal/domain"
	"github.com/MrSnakeDoc/lune/internal/utils"
)

const (
	defaultBaseURL = "https://www.googleapis.com/youtube/v3"

	// maxResults is the number of video results requested per search.
	maxResults = 6

	// fallbackQuery is used for labels without a phrase list.
	fallbackQuery = "calm music"
)

// Options configures the music-search client.
type Options struct {
	BaseURL string        // defaults to the YouTube Data API
	Timeout time.Duration // 0 = no client timeout

	// SearchPhrases maps an emotion label to its canned search phrases;
	// the first phrase of each list is used. Nil falls back to a single
	// generic query for every label.
	SearchPhrases map[string][]string
}

// Client calls the external music-search collaborator.
type Client struct {
	httpClient *http.Client
	baseURL    string
	phrases    map[string][]string
}

// NewClient creates a music-search client.
func NewClient(opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = defaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{Timeout: opts.Timeout},
		baseURL:    strings.TrimSuffix(opts.BaseURL, "/"),
		phrases:    opts.SearchPhrases,
	}
}

type searchResponse struct {
	Items []struct {
		ID struct {
			VideoID string `json:"videoId"`
		} `json:"id"`
		Snippet struct {
			Title        string `json:"title"`
			ChannelTitle string `json:"channelTitle"`
			Thumbnails   struct {
				Medium struct {
					URL string `json:"url"`
				} `json:"medium"`
			} `json:"thumbnails"`
		} `json:"snippet"`
	} `json:"items"`
}

// Search returns up to 6 mood-matched videos for the given emotion label.
func (c *Client) Search(ctx context.Context, emotionLabel, apiKey string) ([]domain.Video, error) {
	if apiKey == "" {
		return nil, domain.NewConfigurationError("YouTube API key is not configured")
	}

	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("q", c.queryFor(emotionLabel))
	params.Set("type", "video")
	params.Set("maxResults", fmt.Sprintf("%d", maxResults))
	params.Set("key", apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build search request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &domain.CollaboratorError{
			Service: "youtube",
			Kind:    domain.CollaboratorGeneric,
			Msg:     fmt.Sprintf("request failed: %v", err),
		}
	}
	defer utils.Close(resp.Body)

	// 403 covers both an invalid key and exhausted quota; the API does
	// not let us tell them apart.
	if resp.StatusCode == http.StatusForbidden {
		return nil, &domain.CollaboratorError{
			Service: "youtube",
			Kind:    domain.CollaboratorInvalidCredential,
			Msg:     "API key is not valid or quota is exceeded",
		}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &domain.CollaboratorError{
			Service: "youtube",
			Kind:    domain.CollaboratorGeneric,
			Msg:     fmt.Sprintf("unexpected status %d", resp.StatusCode),
		}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read search response: %w", err)
	}

	var search searchResponse
	if err := json.Unmarshal(data, &search); err != nil {
		return nil, fmt.Errorf("failed to parse search response: %w", err)
	}

	videos := make([]domain.Video, 0, len(search.Items))
	for _, item := range search.Items {
		videos = append(videos, domain.Video{
			ID:           item.ID.VideoID,
			VideoID:      item.ID.VideoID,
			Title:        item.Snippet.Title,
			Thumbnail:    item.Snippet.Thumbnails.Medium.URL,
			ChannelTitle: item.Snippet.ChannelTitle,
		})
	}
	return videos, nil
}

// queryFor picks the first canned phrase for the label.
func (c *Client) queryFor(emotionLabel string) string {
	phrases := c.phrases[emotionLabel]
	if len(phrases) == 0 {
		return fallbackQuery
	}
	return phrases[0]
}
