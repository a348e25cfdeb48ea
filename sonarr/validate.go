package sonarr

import (
	"context"
	"strings"
)

// Legal values for the closed option sets.
var (
	MonitorOptions = []string{
		MonitorAll, MonitorFuture, MonitorMissing, MonitorExisting,
		MonitorPilot, MonitorFirstSeason, MonitorLatestSeason, MonitorNone,
	}
	SeriesTypeOptions = []string{SeriesTypeStandard, SeriesTypeDaily, SeriesTypeAnime}
	ApplyTagsOptions  = []string{ApplyTagsAdd, ApplyTagsReplace, ApplyTagsRemove}
)

// validateOption checks value against a closed option set and returns the
// canonical spelling. Matching is case-insensitive.
func validateOption(setting, value string, options []string) (string, error) {
	for _, option := range options {
		if strings.EqualFold(option, value) {
			return option, nil
		}
	}
	return "", &InvalidOptionError{Setting: setting, Value: value, Options: options}
}

// resolveQualityProfile resolves a profile ref to its canonical ID
// against a freshly fetched profile list. The remote is the source of
// truth; nothing is cached between validation calls.
func (c *Client) resolveQualityProfile(ctx context.Context, ref ProfileRef) (int64, error) {
	profiles, err := c.QualityProfiles(ctx)
	if err != nil {
		return 0, err
	}

	names := make([]string, 0, len(profiles))
	for _, profile := range profiles {
		if (ref.ID != 0 && profile.ID == ref.ID) || (ref.Name != "" && profile.Name == ref.Name) {
			return profile.ID, nil
		}
		names = append(names, profile.Name)
	}

	return 0, &InvalidOptionError{Setting: "quality_profile", Value: ref.String(), Options: names}
}

// resolveLanguageProfile resolves a language profile ref to its canonical ID.
func (c *Client) resolveLanguageProfile(ctx context.Context, ref ProfileRef) (int64, error) {
	profiles, err := c.LanguageProfiles(ctx)
	if err != nil {
		return 0, err
	}

	names := make([]string, 0, len(profiles))
	for _, profile := range profiles {
		if (ref.ID != 0 && profile.ID == ref.ID) || (ref.Name != "" && profile.Name == ref.Name) {
			return profile.ID, nil
		}
		names = append(names, profile.Name)
	}

	return 0, &InvalidOptionError{Setting: "language_profile", Value: ref.String(), Options: names}
}

// resolveRootFolder resolves a root folder ref to its remote path.
func (c *Client) resolveRootFolder(ctx context.Context, ref RootFolderRef) (string, error) {
	folders, err := c.RootFolders(ctx)
	if err != nil {
		return "", err
	}

	paths := make([]string, 0, len(folders))
	for _, folder := range folders {
		if (ref.ID != 0 && folder.ID == ref.ID) || (ref.Path != "" && folder.Path == ref.Path) {
			return folder.Path, nil
		}
		paths = append(paths, folder.Path)
	}

	return "", &InvalidOptionError{Setting: "root_folder", Value: ref.String(), Options: paths}
}

// resolveTags resolves tag refs to their IDs. Unknown labels are created
// when create is true; tag removal must not create the tags it is about
// to remove, so an unknown ref is invalid there.
func (c *Client) resolveTags(ctx context.Context, refs []TagRef, create bool) ([]int64, error) {
	tags, err := c.Tags(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(refs))
	for _, ref := range refs {
		id, ok := matchTag(tags, ref)
		if !ok {
			if !create || ref.Label == "" {
				labels := make([]string, 0, len(tags))
				for _, tag := range tags {
					labels = append(labels, tag.Label)
				}
				return nil, &InvalidOptionError{Setting: "tag", Value: ref.String(), Options: labels}
			}
			tag, err := c.CreateTag(ctx, ref.Label)
			if err != nil {
				return nil, err
			}
			c.logger.Debug().Str("label", tag.Label).Int64("id", tag.ID).Msg("Created missing tag")
			tags = append(tags, *tag)
			id = tag.ID
		}
		ids = append(ids, id)
	}

	return ids, nil
}

func matchTag(tags []Tag, ref TagRef) (int64, bool) {
	for _, tag := range tags {
		if (ref.ID != 0 && tag.ID == ref.ID) || (ref.Label != "" && strings.EqualFold(tag.Label, ref.Label)) {
			return tag.ID, true
		}
	}
	return 0, false
}
