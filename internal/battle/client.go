package battle

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

const EndMarker = "/end/"

// Ended reports whether a resolved response URL signals the end of a battle.
func Ended(resolvedURL string) bool { return strings.Contains(resolvedURL, EndMarker) }

// Client talks to the game server. It only ever looks at transport errors and
// the final URL after redirects.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func NewClient(baseURL string, hc *http.Client) *Client {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &Client{BaseURL: strings.TrimRight(baseURL, "/"), HTTP: hc}
}

// CreateCharacter registers c with the server. The response is not inspected.
func (c *Client) CreateCharacter(ctx context.Context, ch Character) error {
	q := url.Values{}
	q.Set("name", ch.Name)
	q.Set("class", string(ch.Class))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/newChar?"+q.Encode(), nil)
	if err != nil {
		return fmt.Errorf("create %s: %w", ch.ID(), err)
	}
	if _, err := c.do(req); err != nil {
		return fmt.Errorf("create %s: %w", ch.ID(), err)
	}
	return nil
}

// Turn submits move for player against enemy and returns the resolved URL.
func (c *Client) Turn(ctx context.Context, player, enemy Character, move Move) (string, error) {
	u := c.BaseURL + "/turn/" + url.PathEscape(player.ID()) + "/" + url.PathEscape(enemy.ID()) + "/" + string(move)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", fmt.Errorf("turn %s: %w", move, err)
	}
	final, err := c.do(req)
	if err != nil {
		return "", fmt.Errorf("turn %s: %w", move, err)
	}
	return final, nil
}

func (c *Client) do(req *http.Request) (string, error) {
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	return resp.Request.URL.String(), nil
}
