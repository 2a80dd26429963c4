package directory

import (
	"github.com/jcsullivan216/dowdirectory/internal/fields"
	"github.com/jcsullivan216/dowdirectory/internal/patterns"
)

// orgAttribution decides a record's parent organization and organization
// type from the active context levels. Rules are tried in order and the
// first applicable one wins; the order mirrors the directory's nesting
// convention, not a semantic requirement.
var orgAttribution = []struct {
	applies func(*Context) bool
	apply   func(*Context, *PersonRecord)
}{
	{
		applies: func(c *Context) bool { return c.CPE != "" },
		apply: func(c *Context, r *PersonRecord) {
			r.ParentOrganization = c.CPE
			if c.Office != "" {
				r.OrganizationType = "PM"
			} else {
				r.OrganizationType = "CPE Staff"
			}
		},
	},
	{
		applies: func(c *Context) bool { return c.PAE != "" },
		apply: func(c *Context, r *PersonRecord) {
			r.ParentOrganization = c.PAE
			r.OrganizationType = "PAE Staff"
		},
	},
}

// buildEntry assembles a candidate person record from a window of body text
// plus the active hierarchy context. It returns false when the window holds
// no extractable name; such windows are the common case and are simply
// skipped.
func buildEntry(window string, page int, ctx *Context) (PersonRecord, bool) {
	rank, name := fields.ExtractRankAndName(window)
	if name == "" {
		return PersonRecord{}, false
	}

	rec := PersonRecord{
		Name:        name,
		RankTitle:   rank,
		PageNumber:  page,
		Status:      patterns.DetectStatus(window),
		Email:       fields.ExtractEmail(window),
		Phone:       fields.ExtractPhone(window),
		Location:    fields.ExtractLocation(window),
		LastUpdated: LastUpdatedTag,

		ServiceAgency: ctx.Service,
		Portfolio:     ctx.PAE,
	}

	for _, rule := range orgAttribution {
		if rule.applies(ctx) {
			rule.apply(ctx, &rec)
			break
		}
	}
	if ctx.Office != "" {
		rec.OrganizationName = ctx.Office
	}

	rec.Position, rec.PositionType = fields.ExtractPosition(window)
	rec.MissionArea = patterns.MissionAreaLabel(window)

	return rec, true
}
