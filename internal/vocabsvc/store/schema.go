package store

// Schema is applied at startup; every statement is idempotent.
//
// Words carry their own scheduling state. next_review defaults to the
// epoch so unseen words sort to the front of the due set. The reviews and
// learning_sessions tables are analytics only, never read by the
// scheduler. Session reviews carry the token of the session that wrote
// them (typing drill reviews leave it NULL); no FK, the session row is a
// best-effort write.
const Schema = `
CREATE TABLE IF NOT EXISTS users (
    user_id BIGSERIAL PRIMARY KEY,
    anon_code TEXT UNIQUE NOT NULL,
    class_name TEXT NOT NULL DEFAULT '',
    status TEXT NOT NULL DEFAULT 'active',
    created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS words (
    id BIGSERIAL PRIMARY KEY,
    english TEXT NOT NULL,
    indonesian TEXT NOT NULL,
    part_of_speech TEXT NOT NULL DEFAULT 'noun',
    example_sentence TEXT NOT NULL DEFAULT '',
    difficulty_score DOUBLE PRECISION NOT NULL DEFAULT 1.0,
    interval_days INTEGER NOT NULL DEFAULT 1,
    repetition_count INTEGER NOT NULL DEFAULT 0,
    ease_factor DOUBLE PRECISION NOT NULL DEFAULT 2.5,
    next_review TIMESTAMPTZ NOT NULL DEFAULT 'epoch',
    last_reviewed TIMESTAMPTZ,
    streak INTEGER NOT NULL DEFAULT 0,
    added_date TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS reviews (
    id BIGSERIAL PRIMARY KEY,
    word_id BIGINT NOT NULL REFERENCES words(id),
    user_id BIGINT NOT NULL REFERENCES users(user_id),
    quality INTEGER NOT NULL,
    correct BOOLEAN NOT NULL,
    user_answer TEXT NOT NULL DEFAULT '',
    response_time DOUBLE PRECISION NOT NULL DEFAULT 0,
    session_token TEXT,
    reviewed_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS learning_sessions (
    id BIGSERIAL PRIMARY KEY,
    session_token TEXT UNIQUE NOT NULL,
    user_id BIGINT NOT NULL REFERENCES users(user_id),
    start_time TIMESTAMPTZ NOT NULL,
    end_time TIMESTAMPTZ,
    total_questions INTEGER NOT NULL DEFAULT 0,
    correct_answers INTEGER NOT NULL DEFAULT 0,
    accuracy_rate DOUBLE PRECISION NOT NULL DEFAULT 0,
    completed BOOLEAN NOT NULL DEFAULT FALSE
);

CREATE INDEX IF NOT EXISTS idx_words_next_review ON words (next_review);
CREATE INDEX IF NOT EXISTS idx_reviews_word_id ON reviews (word_id);
CREATE INDEX IF NOT EXISTS idx_reviews_reviewed_at ON reviews (reviewed_at);
CREATE INDEX IF NOT EXISTS idx_reviews_session_token ON reviews (session_token);
`
