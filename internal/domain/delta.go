package domain

// ProjectStatus - статус модерации проекта.
type ProjectStatus string

const (
	// StatusNone означает отсутствие проекта (переход создания).
	StatusNone     ProjectStatus = ""
	StatusPending  ProjectStatus = "pending"
	StatusApproved ProjectStatus = "approved"
	StatusRejected ProjectStatus = "rejected"
)

// Valid сообщает, является ли статус одним из допустимых.
func (s ProjectStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// CounterDelta - знаковое изменение счётчиков проектов.
type CounterDelta struct {
	Total    int
	Pending  int
	Approved int
	Rejected int
}

// IsZero сообщает, что дельта ничего не меняет.
func (d CounterDelta) IsZero() bool {
	return d == CounterDelta{}
}

// ApplyTo применяет дельту к счётчикам. Если результат нарушает инварианты,
// счётчики не изменяются и возвращается ErrInvalidTransition.
func (d CounterDelta) ApplyTo(c *ProjectCounters) error {
	next := ProjectCounters{
		TotalProjects:    c.TotalProjects + d.Total,
		PendingProjects:  c.PendingProjects + d.Pending,
		ApprovedProjects: c.ApprovedProjects + d.Approved,
		RejectedProjects: c.RejectedProjects + d.Rejected,
	}
	if !next.Consistent() {
		return ErrInvalidTransition
	}
	*c = next
	return nil
}

func (d *CounterDelta) add(status ProjectStatus, n int) {
	switch status {
	case StatusPending:
		d.Pending += n
	case StatusApproved:
		d.Approved += n
	case StatusRejected:
		d.Rejected += n
	}
}

// StatusDelta возвращает изменение счётчиков для перехода oldStatus -> newStatus.
// oldStatus == StatusNone соответствует созданию проекта.
func StatusDelta(oldStatus, newStatus ProjectStatus) (CounterDelta, error) {
	var d CounterDelta
	if !newStatus.Valid() {
		return d, ErrInvalidStatus
	}
	if oldStatus != StatusNone && !oldStatus.Valid() {
		return d, ErrInvalidStatus
	}
	if oldStatus == newStatus {
		return d, nil
	}

	if oldStatus == StatusNone {
		d.Total++
	} else {
		d.add(oldStatus, -1)
	}
	d.add(newStatus, 1)
	return d, nil
}
