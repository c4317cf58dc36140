package database

// Schema returns the full SQL schema for the practice database
func Schema() string {
	return `
-- users table
CREATE TABLE IF NOT EXISTS users (
    id TEXT PRIMARY KEY,
    email TEXT NOT NULL UNIQUE,
    password TEXT NOT NULL,
    name TEXT NOT NULL,
    role TEXT NOT NULL DEFAULT 'therapist',
    created_at INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_users_email ON users(email);

-- clients table (patients of a practice)
CREATE TABLE IF NOT EXISTS clients (
    id TEXT PRIMARY KEY,
    owner_id TEXT NOT NULL,            -- tenant key of the owning therapist
    first_name TEXT NOT NULL,
    last_name TEXT NOT NULL,
    email TEXT,
    phone_number TEXT,
    status TEXT NOT NULL DEFAULT 'ACTIVE',
    created_at INTEGER NOT NULL,
    updated_at INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_clients_owner ON clients(owner_id);
CREATE INDEX IF NOT EXISTS idx_clients_last_name ON clients(last_name);

-- therapy_sessions table (appointments)
CREATE TABLE IF NOT EXISTS therapy_sessions (
    id TEXT PRIMARY KEY,
    owner_id TEXT NOT NULL,            -- tenant key of the owning therapist
    client_id TEXT NOT NULL,
    start_time INTEGER NOT NULL,       -- unix timestamp
    end_time INTEGER NOT NULL,         -- unix timestamp
    status TEXT NOT NULL DEFAULT 'SCHEDULED',
    notes TEXT,
    created_at INTEGER NOT NULL,
    updated_at INTEGER NOT NULL,
    FOREIGN KEY (client_id) REFERENCES clients(id)
);

CREATE INDEX IF NOT EXISTS idx_sessions_owner ON therapy_sessions(owner_id);
CREATE INDEX IF NOT EXISTS idx_sessions_start ON therapy_sessions(start_time);
CREATE INDEX IF NOT EXISTS idx_sessions_client ON therapy_sessions(client_id);

-- notes table (clinical notes attached to sessions)
CREATE TABLE IF NOT EXISTS notes (
    id TEXT PRIMARY KEY,
    owner_id TEXT NOT NULL,
    session_id TEXT,
    client_id TEXT,
    title TEXT NOT NULL,
    content TEXT NOT NULL,
    created_at INTEGER NOT NULL,
    FOREIGN KEY (session_id) REFERENCES therapy_sessions(id),
    FOREIGN KEY (client_id) REFERENCES clients(id)
);

CREATE INDEX IF NOT EXISTS idx_notes_session ON notes(session_id);
CREATE INDEX IF NOT EXISTS idx_notes_owner ON notes(owner_id);
`
}
