package transactionRepository

const (
	queryCreateTransaction = `
		INSERT INTO transactions (
			id,
			user_id,
			description,
			amount,
			quantity,
			unit_price,
			type,
			category,
			created_at,
			updated_at
		) VALUES (
			:id,
			:user_id,
			:description,
			:amount,
			:quantity,
			:unit_price,
			:type,
			:category,
			:created_at,
			:updated_at
		)
	`

	queryGetTransactionByID = `
		SELECT
			id,
			user_id,
			description,
			amount,
			quantity,
			unit_price,
			type,
			category,
			created_at,
			updated_at
		FROM transactions
		WHERE id = :id
	`

	queryGetTransactionsByUserID = `
		SELECT
			id,
			user_id,
			description,
			amount,
			quantity,
			unit_price,
			type,
			category,
			created_at,
			updated_at
		FROM transactions
		WHERE user_id = :user_id
	`

	queryGetTransactionsByWindow = `
		SELECT
			id,
			user_id,
			description,
			amount,
			quantity,
			unit_price,
			type,
			category,
			created_at,
			updated_at
		FROM transactions
		WHERE
			user_id = :user_id
			AND created_at >= :from
			AND created_at < :to
		ORDER BY created_at DESC
		LIMIT :limit
	`

	queryUpdateTransaction = `
		UPDATE transactions
		SET
			description = :description,
			amount = :amount,
			quantity = :quantity,
			unit_price = :unit_price,
			type = :type,
			category = :category,
			created_at = :created_at,
			updated_at = :updated_at
		WHERE id = :id
	`

	queryDeleteTransaction = `
		DELETE FROM transactions
		WHERE id = :id
	`
)
