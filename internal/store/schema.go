package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS profiles (
    profile_key          TEXT PRIMARY KEY,
    source_file          TEXT NOT NULL,
    payload              TEXT NOT NULL,
    generated_at         TEXT NOT NULL,
    saved_at             TEXT NOT NULL
);
`
