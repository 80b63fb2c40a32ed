// Package cap parses Common Alerting Protocol v1.2 XML documents and applies
// the content rules for cell-broadcast alert text.
package cap

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Message types accepted on the broadcast ingestion endpoint.
const (
	MsgTypeAlert  = "Alert"
	MsgTypeCancel = "Cancel"
)

// Area is one named alert area with its raw polygons. Polygon points are kept
// in the (longitude, latitude) order they arrive in.
type Area struct {
	Name     string         `validate:"required"`
	Polygons [][][2]float64 `validate:"-"`
}

// BroadcastRequest is the canonical structure a CAP document translates into.
//
// Expires is parsed but deliberately never honoured downstream: broadcast
// expiry is governed by platform policy, not by the sender's declared expiry.
type BroadcastRequest struct {
	MsgType    string  `validate:"required,oneof=Alert Cancel"`
	References *string `validate:"-"`
	Reference  string  `validate:"required"`
	CapEvent   string  `validate:"-"`
	Content    string  `validate:"required_if=MsgType Alert"`
	Areas      []Area  `validate:"dive"`
	Expires    *time.Time
}

// ReferenceList splits the comma-separated references element into individual
// alert references. Returns nil when the element was absent.
func (r *BroadcastRequest) ReferenceList() []string {
	if r.References == nil {
		return nil
	}
	parts := strings.Split(*r.References, ",")
	refs := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			refs = append(refs, trimmed)
		}
	}
	return refs
}

type capAlert struct {
	XMLName    xml.Name  `xml:"alert"`
	Identifier string    `xml:"identifier"`
	MsgType    string    `xml:"msgType"`
	References string    `xml:"references"`
	Info       []capInfo `xml:"info"`
}

type capInfo struct {
	Category    string    `xml:"category"`
	Event       string    `xml:"event"`
	Expires     string    `xml:"expires"`
	Description string    `xml:"description"`
	Areas       []capArea `xml:"area"`
}

type capArea struct {
	AreaDesc string   `xml:"areaDesc"`
	Polygons []string `xml:"polygon"`
}

// Translate parses a CAP v1.2 XML document into its canonical broadcast
// request. The document is expected to have passed XSD validation already;
// Translate still fails on malformed XML or unparseable polygon data.
func Translate(raw []byte) (*BroadcastRequest, error) {
	var alert capAlert
	if err := xml.Unmarshal(raw, &alert); err != nil {
		return nil, fmt.Errorf("failed to parse CAP XML: %w", err)
	}

	req := &BroadcastRequest{
		MsgType:   alert.MsgType,
		Reference: alert.Identifier,
	}

	if alert.References != "" {
		refs := alert.References
		req.References = &refs
	}

	if len(alert.Info) == 0 {
		return req, nil
	}

	// CAP allows one info block per language; the first one is authoritative.
	info := alert.Info[0]
	req.CapEvent = info.Event
	req.Content = info.Description

	if info.Expires != "" {
		expires, err := time.Parse(time.RFC3339, info.Expires)
		if err != nil {
			return nil, fmt.Errorf("failed to parse <expires>: %w", err)
		}
		req.Expires = &expires
	}

	for _, area := range info.Areas {
		polygons := make([][][2]float64, 0, len(area.Polygons))
		for _, polygon := range area.Polygons {
			ring, err := parsePolygon(polygon)
			if err != nil {
				return nil, fmt.Errorf("failed to parse <polygon> for area %q: %w", area.AreaDesc, err)
			}
			polygons = append(polygons, ring)
		}
		req.Areas = append(req.Areas, Area{
			Name:     area.AreaDesc,
			Polygons: polygons,
		})
	}

	return req, nil
}

// parsePolygon converts a CAP polygon string ("lat,lon lat,lon ...") into
// (longitude, latitude) pairs. CAP v1.2 writes latitude first; the rest of
// the pipeline works in (lon, lat), so each pair is flipped here.
func parsePolygon(s string) ([][2]float64, error) {
	var ring [][2]float64
	for _, pair := range strings.Fields(s) {
		coords := strings.Split(pair, ",")
		if len(coords) != 2 {
			return nil, fmt.Errorf("coordinate pair %q is not two comma-separated values", pair)
		}
		lat, err := strconv.ParseFloat(coords[0], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid coordinate %q: %w", coords[0], err)
		}
		lon, err := strconv.ParseFloat(coords[1], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid coordinate %q: %w", coords[1], err)
		}
		ring = append(ring, [2]float64{lon, lat})
	}
	return ring, nil
}
