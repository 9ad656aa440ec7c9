package store

import (
	"github.com/agencykit/opsdeck/pkg/report"
)

// Snapshot collects the active records of every reporting collection
// for the dashboard and performance views.
func (s *Store) Snapshot() (report.Snapshot, error) {
	var snap report.Snapshot
	var err error

	if snap.Clients, err = s.clients.Active(); err != nil {
		return report.Snapshot{}, err
	}
	if snap.Leads, err = s.leads.Active(); err != nil {
		return report.Snapshot{}, err
	}
	if snap.Tasks, err = s.tasks.Active(); err != nil {
		return report.Snapshot{}, err
	}
	if snap.Content, err = s.content.Active(); err != nil {
		return report.Snapshot{}, err
	}
	if snap.Campaigns, err = s.campaigns.Active(); err != nil {
		return report.Snapshot{}, err
	}
	if snap.Performance, err = s.performance.Active(); err != nil {
		return report.Snapshot{}, err
	}
	return snap, nil
}
