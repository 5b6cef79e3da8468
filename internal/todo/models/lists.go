package models

// Lists is the list collection held by one session. The zero value is an
// empty collection ready to use.
type Lists struct {
	Items  []*List `json:"lists"`
	NextID int     `json:"next_id,omitempty"`
}

// Create validates name and appends a new empty list.
func (c *Lists) Create(name string) (*List, error) {
	if err := c.validateName(0, name); err != nil {
		return nil, err
	}
	list := &List{ID: c.nextID(), Name: name, Todos: []*Todo{}}
	c.Items = append(c.Items, list)
	return list, nil
}

// Find returns the list with the given id. The returned list is shared with
// the collection, so mutations apply in place.
func (c *Lists) Find(id int) (*List, error) {
	for _, l := range c.Items {
		if l.ID == id {
			return l, nil
		}
	}
	return nil, listNotFound()
}

// Rename validates name against every other list and renames list id.
func (c *Lists) Rename(id int, name string) error {
	list, err := c.Find(id)
	if err != nil {
		return err
	}
	if err := c.validateName(id, name); err != nil {
		return err
	}
	list.Name = name
	return nil
}

// Delete removes the list with the given id. Missing ids are ignored.
func (c *Lists) Delete(id int) {
	for i, l := range c.Items {
		if l.ID == id {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}

// Len is the number of lists.
func (c *Lists) Len() int {
	return len(c.Items)
}

// validateName checks length and uniqueness, ignoring the list with id
// skipID (0 matches no list).
func (c *Lists) validateName(skipID int, name string) error {
	if !validNameLength(name) {
		return errListNameLength
	}
	for _, l := range c.Items {
		if l.ID != skipID && l.Name == name {
			return errListNameUnique
		}
	}
	return nil
}

func (c *Lists) nextID() int {
	id := 1
	for _, l := range c.Items {
		if l.ID >= id {
			id = l.ID + 1
		}
	}
	if c.NextID > id {
		id = c.NextID
	}
	c.NextID = id + 1
	return id
}
