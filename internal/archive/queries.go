package archive

// Archived order queries
const (
	insertArchivedOrderSQL = `
		INSERT INTO archived_orders
			(id, number, type, table_number, customer_name, customer_phone, customer_address,
			 total_amount, taxes, delivery_charge, grand_total, processing_time, assigned_chef,
			 created_at, archived_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, NOW())
		ON CONFLICT (id) DO NOTHING`

	insertArchivedItemSQL = `
		INSERT INTO archived_order_items
			(order_id, menu_item_id, menu_item_name, quantity, price, preparation_time, cooking_instructions)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
)
