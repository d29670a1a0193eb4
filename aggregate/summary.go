// Package aggregate turns the parsed contact sequence into per-band
// confirmation summaries: which DXCC entities still need a confirmation on a
// band, plus contact and confirmation totals. Summaries are fresh values
// derived on every call; nothing is cached between invocations.
package aggregate

import (
	"sort"

	"qsltracker/contact"
)

// Entity is one DXCC entity appearing in a summary's unconfirmed list.
type Entity struct {
	Code     string // DXCC entity code as logged or derived
	Name     string // country display name; may be empty
	Contacts int    // contacts logged with this entity on the summary's band
}

// Label returns the identifier used for sorting and display: the country name
// when known, otherwise the code.
func (e Entity) Label() string {
	if e.Name != "" {
		return e.Name
	}
	return e.Code
}

// BandSummary is the aggregation result for one band.
type BandSummary struct {
	Band                string
	UnconfirmedEntities []Entity // sorted ascending by Label, no duplicates
	TotalContacts       int
	TotalLoTWConfirmed  int // ConfirmedLoTW or ConfirmedBoth
	TotalCardConfirmed  int // ConfirmedCard or ConfirmedBoth
}

// Summarize computes the BandSummary for one band. Confirmation is evaluated
// per entity, not per contact: an entity is omitted from the unconfirmed list
// when ANY contact with it on this band is confirmed, even if other contacts
// with it are not. Records without a usable band never match; records without
// an entity count toward totals but cannot appear in the entity list.
func Summarize(records []contact.Record, band string) BandSummary {
	summary := BandSummary{Band: contact.NormalizeBand(band)}

	type entityState struct {
		name      string
		contacts  int
		confirmed bool
	}
	entities := make(map[string]*entityState)

	for _, rec := range records {
		if !rec.OnBand(summary.Band) {
			continue
		}
		summary.TotalContacts++

		state := contact.Classify(rec)
		if state == contact.ConfirmedLoTW || state == contact.ConfirmedBoth {
			summary.TotalLoTWConfirmed++
		}
		if state == contact.ConfirmedCard || state == contact.ConfirmedBoth {
			summary.TotalCardConfirmed++
		}

		if rec.Entity == "" {
			continue
		}
		es := entities[rec.Entity]
		if es == nil {
			es = &entityState{}
			entities[rec.Entity] = es
		}
		es.contacts++
		if es.name == "" {
			es.name = rec.Country
		}
		if state != contact.Unconfirmed {
			es.confirmed = true
		}
	}

	for code, es := range entities {
		if es.confirmed {
			continue
		}
		summary.UnconfirmedEntities = append(summary.UnconfirmedEntities, Entity{
			Code:     code,
			Name:     es.name,
			Contacts: es.contacts,
		})
	}
	sort.Slice(summary.UnconfirmedEntities, func(i, j int) bool {
		a, b := summary.UnconfirmedEntities[i], summary.UnconfirmedEntities[j]
		if a.Label() == b.Label() {
			return a.Code < b.Code
		}
		return a.Label() < b.Label()
	})
	return summary
}

// Bands returns the normalized band labels present in the record sequence,
// longest wavelength first (80m before 20m before 70cm).
func Bands(records []contact.Record) []string {
	seen := make(map[string]struct{})
	var bands []string
	for _, rec := range records {
		if rec.Band == "" {
			continue
		}
		if _, ok := seen[rec.Band]; ok {
			continue
		}
		seen[rec.Band] = struct{}{}
		bands = append(bands, rec.Band)
	}
	contact.SortBands(bands)
	return bands
}

// Overview summarizes every band present in the records, in display order.
func Overview(records []contact.Record) []BandSummary {
	bands := Bands(records)
	summaries := make([]BandSummary, 0, len(bands))
	for _, band := range bands {
		summaries = append(summaries, Summarize(records, band))
	}
	return summaries
}
