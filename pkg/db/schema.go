package db

const schema = `
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA foreign_keys = ON;
PRAGMA temp_store = MEMORY;

-- URLs table: one row per fetched document
CREATE TABLE IF NOT EXISTS urls (
    url_id INTEGER PRIMARY KEY AUTOINCREMENT,
    original_url TEXT NOT NULL UNIQUE,
    canonical_url TEXT,
    scheme TEXT NOT NULL,
    domain TEXT NOT NULL,
    path TEXT,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_urls_domain ON urls(domain);

-- URL accesses: every fetch attempt, successful or not
CREATE TABLE IF NOT EXISTS url_accesses (
    access_id INTEGER PRIMARY KEY AUTOINCREMENT,
    url_id INTEGER NOT NULL,
    accessed_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    status_code INTEGER,
    error_type TEXT,
    success BOOLEAN NOT NULL,
    FOREIGN KEY (url_id) REFERENCES urls(url_id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_accesses_url ON url_accesses(url_id);
CREATE INDEX IF NOT EXISTS idx_accesses_success ON url_accesses(success);

-- URL metadata: namespaced key/value pairs.
-- "og" holds Open Graph properties, "class" holds type/schema/valid/mode.
CREATE TABLE IF NOT EXISTS url_metadata (
    metadata_id INTEGER PRIMARY KEY AUTOINCREMENT,
    url_id INTEGER NOT NULL,
    namespace TEXT NOT NULL,
    key TEXT NOT NULL,
    value TEXT NOT NULL,
    position INTEGER NOT NULL DEFAULT 0,
    FOREIGN KEY (url_id) REFERENCES urls(url_id) ON DELETE CASCADE,
    UNIQUE(url_id, namespace, key)
);

CREATE INDEX IF NOT EXISTS idx_metadata_url ON url_metadata(url_id);
CREATE INDEX IF NOT EXISTS idx_metadata_lookup ON url_metadata(namespace, key, value);
`
