package store

// Each placeholder appears exactly once and in order, so the same query text
// works with both the pgx and sqlite3 drivers.
const (
	createUser = `INSERT INTO users (user_id, full_name, email, phone_number, account_type, password_hash)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING user_id, full_name, email, phone_number, account_type, created_at;`

	findUserByEmail = `SELECT user_id, full_name, email, phone_number, account_type, created_at
    FROM users
    WHERE email = $1;`

	findUserByEmailWithHash = `SELECT user_id, full_name, email, phone_number, account_type, password_hash, created_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT user_id, full_name, email, phone_number, account_type, created_at
    FROM users
    WHERE user_id = $1;`

	createLoan = `INSERT INTO business_loans (loan_id, applicant_id, business_name, business_type, years_founded, annual_revenue, loan_amount, duration_months, description, sustainability_goals)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
    RETURNING loan_id, applicant_id, business_name, business_type, years_founded, annual_revenue, loan_amount, duration_months, description, sustainability_goals, created_at, updated_at;`
)
