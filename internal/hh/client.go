package hh

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/azuresoup/hh-skills-parser/internal/model"
)

const userAgent = "hh-skills-parser"

// wire types for the hh.ru API responses

type searchResponse struct {
	Items []searchItem `json:"items"`
	Pages int          `json:"pages"`
	Found int          `json:"found"`
}

type searchItem struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	AlternateURL string        `json:"alternate_url"`
	Employer     employerBlock `json:"employer"`
	Salary       *salaryBlock  `json:"salary"`
}

type employerBlock struct {
	Name string `json:"name"`
}

type salaryBlock struct {
	From     *int    `json:"from"`
	To       *int    `json:"to"`
	Currency *string `json:"currency"`
}

type detailResponse struct {
	KeySkills   []keySkill `json:"key_skills"`
	Description string     `json:"description"`
}

type keySkill struct {
	Name string `json:"name"`
}

// Client fetches vacancy search pages and vacancy details from the hh.ru API.
type Client struct {
	baseURL      string
	pageSize     int
	searchClient *http.Client // search pages
	detailClient *http.Client // per-vacancy detail, tighter timeout
}

// NewClient creates a client for the hh.ru API rooted at baseURL.
// The two HTTP clients carry the per-request-type timeouts.
func NewClient(baseURL string, pageSize int, searchClient, detailClient *http.Client) *Client {
	return &Client{
		baseURL:      baseURL,
		pageSize:     pageSize,
		searchClient: searchClient,
		detailClient: detailClient,
	}
}

// SearchPage fetches one zero-based page of title-only search results.
// area is an optional hh.ru area id; empty means no geographic filter.
func (c *Client) SearchPage(ctx context.Context, query, area string, page int) (model.SearchPage, error) {
	params := url.Values{}
	params.Set("text", query)
	params.Set("page", strconv.Itoa(page))
	params.Set("per_page", strconv.Itoa(c.pageSize))
	params.Set("search_field", "name")
	if area != "" {
		params.Set("area", area)
	}

	var resp searchResponse
	if err := c.get(ctx, c.searchClient, c.baseURL+"/vacancies?"+params.Encode(), &resp); err != nil {
		return model.SearchPage{}, fmt.Errorf("search page %d: %w", page, err)
	}

	sp := model.SearchPage{
		Items: make([]model.VacancySummary, 0, len(resp.Items)),
		Pages: resp.Pages,
		Found: resp.Found,
	}
	for _, item := range resp.Items {
		s := model.VacancySummary{
			ID:       item.ID,
			Title:    item.Name,
			URL:      item.AlternateURL,
			Employer: item.Employer.Name,
		}
		if item.Salary != nil {
			s.Salary = &model.Salary{
				From:     item.Salary.From,
				To:       item.Salary.To,
				Currency: item.Salary.Currency,
			}
		}
		sp.Items = append(sp.Items, s)
	}
	return sp, nil
}

// FetchDetail fetches the enrichment (key skills, description) for one vacancy.
func (c *Client) FetchDetail(ctx context.Context, id string) (*model.VacancyDetail, error) {
	var resp detailResponse
	if err := c.get(ctx, c.detailClient, c.baseURL+"/vacancies/"+url.PathEscape(id), &resp); err != nil {
		return nil, fmt.Errorf("vacancy detail %s: %w", id, err)
	}

	detail := &model.VacancyDetail{Description: resp.Description}
	for _, skill := range resp.KeySkills {
		detail.KeySkills = append(detail.KeySkills, skill.Name)
	}
	return detail, nil
}

// get performs a GET request and decodes the JSON body into out.
// Non-200 responses are returned as *model.HTTPError.
func (c *Client) get(ctx context.Context, client *http.Client, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &model.HTTPError{StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
