package mocks

import "context"

// MaintenanceKeeper records maintenance enforcement and optionally runs a hook
// that may mutate pool ledgers the way real maintenance settlement does.
type MaintenanceKeeper struct {
	Calls []uint64
	Hook  func(ctx context.Context, poolID uint64) error
}

// EnforceMaintenance records the call and runs the hook if one is set.
func (m *MaintenanceKeeper) EnforceMaintenance(ctx context.Context, poolID uint64) error {
	m.Calls = append(m.Calls, poolID)
	if m.Hook != nil {
		return m.Hook(ctx, poolID)
	}
	return nil
}
