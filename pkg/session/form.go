package session

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/mattsolo1/grove-mindmap/pkg/history"
	"github.com/mattsolo1/grove-mindmap/pkg/models"
)

// Form is the editable view of a node. Custom field values are kept as
// the raw text typed by the user.
type Form struct {
	Title        string            `validate:"required"`
	Summary      string
	Description  string
	Status       models.Status     `validate:"omitempty,oneof=draft completed important archived"`
	Tags         []string          `validate:"dive,required"`
	CustomFields map[string]string `validate:"dive,keys,required,endkeys"`
}

// Edit returns the form for id, prefilled with the node's current fields.
func (s *Session) Edit(id string) (Form, error) {
	n, err := s.find(id)
	if err != nil {
		return Form{}, err
	}
	f := Form{
		Title:       n.Title,
		Summary:     n.Summary,
		Description: n.Description,
		Status:      models.StatusDraft,
	}
	if m := n.Metadata; m != nil {
		if m.Status != "" {
			f.Status = m.Status
		}
		f.Tags = append([]string(nil), m.Tags...)
		if len(m.CustomFields) > 0 {
			f.CustomFields = make(map[string]string, len(m.CustomFields))
			for k, v := range m.CustomFields {
				f.CustomFields[k] = models.FormatFieldValue(v)
			}
		}
	}
	return f, nil
}

// normalize trims text input, drops empty and repeated tags and defaults
// the status.
func (f Form) normalize() Form {
	f.Title = strings.TrimSpace(f.Title)
	if f.Status == "" {
		f.Status = models.StatusDraft
	}
	var tags []string
	seen := make(map[string]bool)
	for _, t := range f.Tags {
		t = strings.TrimSpace(t)
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		tags = append(tags, t)
	}
	f.Tags = tags
	if f.CustomFields != nil {
		fields := make(map[string]string, len(f.CustomFields))
		for k, v := range f.CustomFields {
			fields[strings.TrimSpace(k)] = v
		}
		f.CustomFields = fields
	}
	return f
}

// SaveEdit validates form and writes it to node id as one undoable edit.
// createdAt is kept (or set on first edit) and updatedAt is refreshed.
func (s *Session) SaveEdit(id string, form Form) (*models.Node, error) {
	n, err := s.find(id)
	if err != nil {
		return nil, err
	}
	form = form.normalize()
	if err := s.validate.Struct(form); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidation, describe(err))
	}

	now := s.now().UTC().Format(time.RFC3339Nano)
	meta := &models.Metadata{
		Status:    form.Status,
		Tags:      form.Tags,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if n.Metadata != nil && n.Metadata.CreatedAt != "" {
		meta.CreatedAt = n.Metadata.CreatedAt
	}
	if len(form.CustomFields) > 0 {
		meta.CustomFields = make(map[string]any, len(form.CustomFields))
		for k, v := range form.CustomFields {
			meta.CustomFields[k] = models.ParseFieldValue(v)
		}
	}

	updated := &models.Node{
		ID:          id,
		Title:       form.Title,
		Summary:     form.Summary,
		Description: form.Description,
		Metadata:    meta,
	}
	if err := s.apply(history.UpdateNode{NodeID: id, Old: n.Fields(), New: updated}); err != nil {
		return nil, err
	}
	return updated, nil
}

// describe flattens validator errors into one readable line.
func describe(err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", strings.ToLower(fe.Field())))
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s must be one of %s", strings.ToLower(fe.Field()), fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s is invalid (%s)", fe.Namespace(), fe.Tag()))
		}
	}
	sort.Strings(msgs)
	return strings.Join(msgs, ", ")
}
