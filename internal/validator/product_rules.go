package validator

// POST /products（未定義のプロパティは拒否）
func CreateProduct() Schema {
	return NewSchema(
		Body("name").IsString("name must be a string").NotEmpty("name should not be empty"),
		Body("description").IsString("description must be a string").NotEmpty("description should not be empty"),
		Body("price").
			IsNumber("price must be a number conforming to the specified constraints").
			MaxDecimalPlaces(2, "price must be a number conforming to the specified constraints").
			IsPositive("price must be a positive number"),
		Body("stock").
			IsNumber("stock must be a number conforming to the specified constraints").
			IsInt("stock must be an integer number").
			Min(0, "stock must not be less than 0"),
		Body("sku").IsString("sku must be a string").NotEmpty("sku should not be empty"),
		Body("category").IsString("category must be a string").NotEmpty("category should not be empty"),
		Body("isActive").Optional().IsBoolean("isActive must be a boolean value"),
	).Strict()
}

// PATCH /products/:id（全部任意）
func UpdateProduct() Schema {
	return NewSchema(
		Body("name").Optional().IsString("name must be a string"),
		Body("description").Optional().IsString("description must be a string"),
		Body("price").Optional().
			IsNumber("price must be a number conforming to the specified constraints").
			MaxDecimalPlaces(2, "price must be a number conforming to the specified constraints").
			IsPositive("price must be a positive number"),
		Body("stock").Optional().
			IsNumber("stock must be a number conforming to the specified constraints").
			IsInt("stock must be an integer number").
			Min(0, "stock must not be less than 0"),
		Body("sku").Optional().IsString("sku must be a string"),
		Body("category").Optional().IsString("category must be a string"),
		Body("isActive").Optional().IsBoolean("isActive must be a boolean value"),
	).Strict()
}

// POST /products/:id/decrease-stock, increase-stock
func ProductStockQuantity() Schema {
	return NewSchema(
		Body("quantity").
			IsNumber("quantity must be a number conforming to the specified constraints").
			IsInt("quantity must be an integer number"),
	).Strict()
}
