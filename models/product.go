package models

import "encoding/json"

// Product mirrors one product object from the upstream catalog API. The
// upstream owns the schema: only the fields this service filters or joins on
// are typed, every other field is captured raw and written back out on
// marshal so responses carry the full upstream object.
type Product struct {
	ID       int
	Title    string
	Category string

	extra map[string]json.RawMessage
}

func (p *Product) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	if raw, ok := fields["id"]; ok {
		if err := json.Unmarshal(raw, &p.ID); err != nil {
			return err
		}
		delete(fields, "id")
	}
	if raw, ok := fields["title"]; ok {
		if err := json.Unmarshal(raw, &p.Title); err != nil {
			return err
		}
		delete(fields, "title")
	}
	if raw, ok := fields["category"]; ok {
		if err := json.Unmarshal(raw, &p.Category); err != nil {
			return err
		}
		delete(fields, "category")
	}

	p.extra = fields
	return nil
}

func (p Product) MarshalJSON() ([]byte, error) {
	fields := make(map[string]json.RawMessage, len(p.extra)+3)
	for k, v := range p.extra {
		fields[k] = v
	}

	for key, val := range map[string]interface{}{
		"id":       p.ID,
		"title":    p.Title,
		"category": p.Category,
	} {
		raw, err := json.Marshal(val)
		if err != nil {
			return nil, err
		}
		fields[key] = raw
	}

	return json.Marshal(fields)
}

// Extra returns a raw passthrough field by its upstream name.
func (p Product) Extra(key string) (json.RawMessage, bool) {
	raw, ok := p.extra[key]
	return raw, ok
}
