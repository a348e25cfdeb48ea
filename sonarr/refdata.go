package sonarr

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// QualityProfiles retrieves all quality profiles from Sonarr
func (c *Client) QualityProfiles(ctx context.Context) ([]QualityProfile, error) {
	endpoint := "qualityProfile"
	if c.legacy {
		endpoint = "profile"
	}

	var profiles []QualityProfile
	if err := c.get(ctx, endpoint, nil, &profiles); err != nil {
		return nil, fmt.Errorf("failed to get quality profiles: %w", err)
	}
	return profiles, nil
}

// LanguageProfiles retrieves all language profiles from Sonarr
func (c *Client) LanguageProfiles(ctx context.Context) ([]LanguageProfile, error) {
	var profiles []LanguageProfile
	if err := c.get(ctx, "languageProfile", nil, &profiles); err != nil {
		return nil, fmt.Errorf("failed to get language profiles: %w", err)
	}
	return profiles, nil
}

// RootFolders retrieves all root folders from Sonarr
func (c *Client) RootFolders(ctx context.Context) ([]RootFolder, error) {
	var folders []RootFolder
	if err := c.get(ctx, "rootfolder", nil, &folders); err != nil {
		return nil, fmt.Errorf("failed to get root folders: %w", err)
	}
	return folders, nil
}

// Tags retrieves all tags from Sonarr
func (c *Client) Tags(ctx context.Context) ([]Tag, error) {
	var tags []Tag
	if err := c.get(ctx, "tag", nil, &tags); err != nil {
		return nil, fmt.Errorf("failed to get tags: %w", err)
	}

	c.logger.Debug().Msgf("Retrieved %d tags from Sonarr", len(tags))
	return tags, nil
}

// CreateTag creates a new tag in Sonarr
func (c *Client) CreateTag(ctx context.Context, label string) (*Tag, error) {
	var tag Tag
	if err := c.post(ctx, "tag", Tag{Label: label}, &tag); err != nil {
		return nil, fmt.Errorf("failed to create tag %q: %w", label, err)
	}
	return &tag, nil
}

// ReferenceData bundles the remote reference lists used to resolve add
// and edit options.
type ReferenceData struct {
	QualityProfiles  []QualityProfile
	LanguageProfiles []LanguageProfile
	RootFolders      []RootFolder
	Tags             []Tag
}

// FetchReferenceData fetches all four reference lists concurrently. Each
// goroutine writes a distinct field, so no locking is needed.
func (c *Client) FetchReferenceData(ctx context.Context) (*ReferenceData, error) {
	data := &ReferenceData{}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		data.QualityProfiles, err = c.QualityProfiles(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		data.LanguageProfiles, err = c.LanguageProfiles(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		data.RootFolders, err = c.RootFolders(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		data.Tags, err = c.Tags(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return data, nil
}
