package validator

// POST /api/inventory/skus
func CreateInventorySKU() Schema {
	return NewSchema(
		Body("skuCode").
			NotEmpty("SKU code is required").
			IsString("SKU code must be a string").
			Trim().
			MinLength(1, "SKU code cannot be empty"),
		Body("productId").
			NotEmpty("Product ID is required").
			IsString("Product ID must be a string").
			Trim().
			MinLength(1, "Product ID cannot be empty"),
		Body("warehouseId").
			NotEmpty("Warehouse ID is required").
			IsString("Warehouse ID must be a string").
			Trim().
			MinLength(1, "Warehouse ID cannot be empty"),
		Body("quantity").
			NotEmpty("Quantity is required").
			IsNumeric("Quantity must be a number").
			IsInt("Quantity must be non-negative").
			Min(0, "Quantity must be non-negative"),
		Body("reservedQuantity").
			Optional().
			IsNumeric("Reserved quantity must be a number").
			IsInt("Reserved quantity must be non-negative").
			Min(0, "Reserved quantity must be non-negative"),
		Body("minStockLevel").
			NotEmpty("Min stock level is required").
			IsNumeric("Min stock level must be a number").
			IsInt("Min stock level must be non-negative").
			Min(0, "Min stock level must be non-negative"),
		Body("maxStockLevel").
			NotEmpty("Max stock level is required").
			IsNumeric("Max stock level must be a number").
			IsInt("Max stock level must be non-negative").
			Min(0, "Max stock level must be non-negative"),
	)
}

// 在庫操作（add/remove/reserve/release）。正の値かどうかはエンティティが見る。
func StockQuantity() Schema {
	return NewSchema(
		Body("quantity").
			NotEmpty("Quantity is required").
			IsNumeric("Quantity must be a number").
			IsInt("Quantity must be an integer"),
	)
}
