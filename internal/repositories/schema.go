package repository

import "database/sql"

// schema is the DDL applied once on startup. Constraints mirror the domain
// invariants so they hold even against writes that bypass the services:
// non-negative money and inventory, positive quantities, unique sku, and a
// unique (order_id, product_id) pair per order. order_items restrict product
// deletion but cascade with their order.
const schema = `
CREATE TABLE IF NOT EXISTS products (
    id              BIGSERIAL PRIMARY KEY,
    sku             VARCHAR(50)  NOT NULL UNIQUE,
    name            VARCHAR(255) NOT NULL,
    description     TEXT,
    price           NUMERIC(10,2) NOT NULL DEFAULT 0 CHECK (price >= 0),
    inventory_count INTEGER      NOT NULL DEFAULT 0 CHECK (inventory_count >= 0),
    category        VARCHAR(100),
    image_url       VARCHAR(255),
    weight          INTEGER,
    dimensions      VARCHAR(50),
    is_active       BOOLEAN      NOT NULL DEFAULT TRUE,
    created_at      TIMESTAMPTZ  NOT NULL DEFAULT NOW(),
    updated_at      TIMESTAMPTZ  NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS ix_products_name_category ON products (name, category);
CREATE INDEX IF NOT EXISTS ix_products_is_active     ON products (is_active);

CREATE TABLE IF NOT EXISTS orders (
    id               BIGSERIAL PRIMARY KEY,
    status           VARCHAR(20)  NOT NULL DEFAULT 'pending',
    total_amount     NUMERIC(10,2) NOT NULL DEFAULT 0 CHECK (total_amount >= 0),
    customer_name    VARCHAR(255) NOT NULL,
    customer_email   VARCHAR(255) NOT NULL,
    customer_phone   VARCHAR(20),
    shipping_address TEXT,
    billing_address  TEXT,
    payment_method   VARCHAR(50),
    payment_id       VARCHAR(100),
    notes            TEXT,
    created_at       TIMESTAMPTZ  NOT NULL DEFAULT NOW(),
    updated_at       TIMESTAMPTZ  NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS ix_orders_status                ON orders (status);
CREATE INDEX IF NOT EXISTS ix_orders_customer_email_status ON orders (customer_email, status);

CREATE TABLE IF NOT EXISTS order_items (
    id         BIGSERIAL PRIMARY KEY,
    order_id   BIGINT NOT NULL REFERENCES orders (id)   ON DELETE CASCADE,
    product_id BIGINT NOT NULL REFERENCES products (id) ON DELETE RESTRICT,
    quantity   INTEGER       NOT NULL DEFAULT 1 CHECK (quantity > 0),
    unit_price NUMERIC(10,2) NOT NULL CHECK (unit_price >= 0),
    subtotal   NUMERIC(10,2) NOT NULL CHECK (subtotal >= 0),
    created_at TIMESTAMPTZ   NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ   NOT NULL DEFAULT NOW(),
    UNIQUE (order_id, product_id)
);

CREATE INDEX IF NOT EXISTS ix_order_items_order_id   ON order_items (order_id);
CREATE INDEX IF NOT EXISTS ix_order_items_product_id ON order_items (product_id);
`

func EnsureSchema(db *sql.DB) error {
	_, err := db.Exec(schema)

	return err
}
