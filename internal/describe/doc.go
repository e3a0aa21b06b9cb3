// Package describe builds descriptive tags (title, keywords, location and a
// structured description) for renamed files from user-maintained CSV sheets.
//
// Description sheets select files by directory, name prefix and counter
// range; processing sheets select them by a filename fragment and record how
// HDR or panorama outputs were produced. The collected data is flattened into
// an exiftool tag map.
package describe
