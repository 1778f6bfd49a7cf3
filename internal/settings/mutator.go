package settings

// Mutator transforms a settings document in place. Mutators registered on an
// Update run in order; later mutators see earlier mutators' changes. Keeping
// them an explicit ordered list makes composed behavior inspectable, unlike
// wrapping callbacks around each other.
type Mutator func(doc *Document) error

// MergeExtraPaths returns a Mutator that unions paths into the list-valued
// key. Existing entries are preserved in place; new entries are appended in
// the order given, skipping any already present. If added is non-nil it
// receives the entries that were actually appended.
func MergeExtraPaths(key string, paths []string, added *[]string) Mutator {
	return func(doc *Document) error {
		existing, _ := doc.Data[key].([]interface{})

		present := make(map[string]struct{}, len(existing))
		for _, v := range existing {
			if s, ok := v.(string); ok {
				present[s] = struct{}{}
			}
		}

		merged := existing
		if merged == nil {
			merged = []interface{}{}
		}
		for _, p := range paths {
			if _, ok := present[p]; ok {
				continue
			}
			present[p] = struct{}{}
			merged = append(merged, p)
			if added != nil {
				*added = append(*added, p)
			}
		}

		doc.Data[key] = merged
		return nil
	}
}
