package directory

// DedupeRecords removes exact-key duplicates, keyed on
// (name, position, organization name), preserving first-seen order. The key
// is deliberately narrow: the same person under two positions stays as two
// rows.
func DedupeRecords(records []PersonRecord) []PersonRecord {
	type key struct{ name, position, org string }
	seen := make(map[key]bool, len(records))
	unique := records[:0:0]

	for _, rec := range records {
		k := key{rec.Name, rec.Position, rec.OrganizationName}
		if seen[k] {
			continue
		}
		seen[k] = true
		unique = append(unique, rec)
	}
	return unique
}

// DedupeRelationships removes duplicate edges keyed on
// (child entity, parent entity), preserving first-seen order.
func DedupeRelationships(rels []Relationship) []Relationship {
	type key struct{ child, parent string }
	seen := make(map[key]bool, len(rels))
	unique := rels[:0:0]

	for _, rel := range rels {
		k := key{rel.ChildEntity, rel.ParentEntity}
		if seen[k] {
			continue
		}
		seen[k] = true
		unique = append(unique, rel)
	}
	return unique
}
