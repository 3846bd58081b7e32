package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS parameter_versions (
    version              TEXT PRIMARY KEY,
    effective_from       TEXT NOT NULL,
    document             TEXT NOT NULL,
    source_path          TEXT,
    imported_at          TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_parameter_versions_effective ON parameter_versions(effective_from);
`
