package logs

const createSessionTable = `
CREATE TABLE IF NOT EXISTS sessions (
  id string primary key,
  started datetime,
  board_rows int,
  board_cols int,
  first string,
  result string,
  plies int
)`

const createMoveTable = `
CREATE TABLE IF NOT EXISTS moves (
  session string not null,
  ply int not null,
  color string,
  piece int,
  kind string,
  src int,
  dst int,
  notation string,
  captured string,
  primary key (session, ply)
)`

const createScoreView = `
CREATE VIEW IF NOT EXISTS session_scores (
  session, color, captures
) AS
SELECT session, color, COUNT(*)
 FROM moves
 WHERE captured != ''
 GROUP BY session, color
`

const insertSession = `
INSERT INTO sessions (id, started, board_rows, board_cols, first, result, plies)
VALUES (:id, :started, :board_rows, :board_cols, :first, :result, :plies)
`

const finishSession = `
UPDATE sessions SET result = ?, plies = ? WHERE id = ?
`

const insertMove = `
INSERT INTO moves (session, ply, color, piece, kind, src, dst, notation, captured)
VALUES (:session, :ply, :color, :piece, :kind, :src, :dst, :notation, :captured)
`

const selectSessions = `
SELECT * FROM sessions ORDER BY started, id
`

const selectSession = `
SELECT * FROM sessions WHERE id = ?
`

const selectMoves = `
SELECT * FROM moves WHERE session = ? ORDER BY ply
`

const selectScores = `
SELECT color, captures FROM session_scores WHERE session = ?
`
