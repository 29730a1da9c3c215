package sqlinline

const QUpsertCheckin = `--sql 27364436-6787-4184-a22e-8c10ed05ec74
insert into checkins (id, goal_id, user_id, day, status, note, created_at, updated_at)
values (gen_random_uuid(), $1::uuid, $2::uuid, $3::date, $4::text, $5::text, now(), now())
on conflict (goal_id, day) do update set
    status = excluded.status,
    note = excluded.note,
    updated_at = now()
returning id, goal_id, user_id, day::text, status, note, created_at, updated_at;
`

const QDeleteCheckin = `--sql fc927cb4-dc84-4f3c-9d8a-15971488d2bd
delete from checkins
where goal_id = $1::uuid
  and user_id = $2::uuid
  and day = $3::date;
`

const QListCheckinsRange = `--sql 5cd8118d-853f-4044-a14c-20c1315d86b6
select id, goal_id, user_id, day::text, status, note, created_at, updated_at
from checkins
where user_id = $1::uuid
  and day >= coalesce(nullif($2::text, '')::date, '-infinity'::date)
  and day <= coalesce(nullif($3::text, '')::date, 'infinity'::date)
order by day asc, goal_id asc;
`

const QListCheckinsByGoal = `--sql fdf20fef-be75-445b-b019-b2b5dab34cc6
select id, goal_id, user_id, day::text, status, note, created_at, updated_at
from checkins
where user_id = $1::uuid
  and goal_id = $2::uuid
order by day asc;
`
