package migration

// Create is the schema for the tidied-dataset database. Numeric columns
// are nullable: a cell that failed to parse upstream is stored as NULL,
// never as a sentinel value.
const Create = `
CREATE TABLE IF NOT EXISTS Track (
  id TEXT NOT NULL,
  artists TEXT NOT NULL,
  name TEXT,
  popularity REAL,
  duration_sec REAL,
  release_date TEXT,
  year INTEGER,
  decade TEXT,
  popularity_range TEXT,
  artist_count INTEGER,
  split TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS TrackKey ON Track (id, artists);

CREATE INDEX IF NOT EXISTS TrackSplit ON Track (split);
`
