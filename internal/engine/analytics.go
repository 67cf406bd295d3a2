package engine

import "where-is-my-table/internal/models"

// Snapshot recomputes the full analytics projection from the engine's
// current state. It is O(total orders) on every call; the working set
// is small enough that recomputation beats the complexity of keeping
// incremental aggregates correct.
func (e *Engine) Snapshot() models.AnalyticsSnapshot {
	e.mu.RLock()
	defer e.mu.RUnlock()

	snap := models.AnalyticsSnapshot{
		TotalChefs:   len(e.chefs.chefs),
		TotalClients: len(e.customers.customers),
		TotalOrders:  len(e.orders.orders),
		OrdersByType: map[string]int{
			string(models.DineIn):   0,
			string(models.Takeaway): 0,
			"served":                0,
		},
		OrdersByStatus: map[string]int{
			string(models.StatusPending):    0,
			string(models.StatusProcessing): 0,
			string(models.StatusDone):       0,
		},
	}

	chefOrders := make(map[string]int)
	dayIndex := make(map[string]int)

	for _, o := range e.orders.orders {
		snap.TotalRevenue += o.GrandTotal
		snap.OrdersByType[string(o.Type)]++
		snap.OrdersByStatus[string(o.Status)]++
		if o.Status == models.StatusDone {
			snap.OrdersByType["served"]++
		}

		day := o.CreatedAt.Format("Mon")
		if i, ok := dayIndex[day]; ok {
			snap.RevenueByDay[i].Revenue += o.GrandTotal
		} else {
			dayIndex[day] = len(snap.RevenueByDay)
			snap.RevenueByDay = append(snap.RevenueByDay, models.DayRevenue{Day: day, Revenue: o.GrandTotal})
		}

		if o.AssignedChef != nil {
			chefOrders[*o.AssignedChef]++
		}
	}

	for _, chef := range e.chefs.chefs {
		snap.ChefOrderDistribution = append(snap.ChefOrderDistribution, models.ChefOrderCount{
			Name:   chef.Name,
			Orders: chefOrders[chef.Name],
		})
	}

	return snap
}
